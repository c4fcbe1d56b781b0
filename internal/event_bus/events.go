package event_bus

import "time"

const (
	EventCreated NotificationType = "event.created"
	EventUpdated NotificationType = "event.updated"
	EventDeleted NotificationType = "event.deleted"
)

// EventChange describes a mutation of one scheduled event, published for
// audit logging.
type EventChange struct {
	ID        string
	Name      string
	Date      time.Time
	Category  string
	EnvType   string
	CreatedBy string
	GroupID   string
}
