package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// RealtimeClient lets interested dashboards observe inventory changes.
// Clients subscribe to postgres_changes on the autos and
// historial_mantenimiento tables; row mutations through this backend reach
// them without an explicit publish.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

// PublishEvent is the hook for explicit channel broadcasts. The Go client
// has no direct Realtime publish; table writes trigger postgres_changes
// events on their own, so this stays a no-op until the REST broadcast API
// is needed.
func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	return nil
}

// PublishAutoEvent announces a change to one vehicle.
func (r *RealtimeClient) PublishAutoEvent(autoID int64, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("auto:%d", autoID)
	return r.PublishEvent(channel, event, payload)
}

// PublishInventoryEvent announces an inventory-wide change.
func (r *RealtimeClient) PublishInventoryEvent(event string, payload map[string]interface{}) error {
	return r.PublishEvent("inventario", event, payload)
}
