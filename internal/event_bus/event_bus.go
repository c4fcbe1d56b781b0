package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// NotificationType is an identifier for notifications.
type NotificationType string

// Notification is the envelope published on the bus.
type Notification struct {
	ctx       context.Context
	Type      NotificationType
	Timestamp time.Time
	Data      any
}

func NewNotification(ctx context.Context, notificationType NotificationType, data any) Notification {
	return Notification{
		ctx:       ctx,
		Type:      notificationType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Context returns the context the notification was published under.
func (n Notification) Context() context.Context {
	if n.ctx == nil {
		return context.Background()
	}
	return n.ctx
}

type handler func(Notification) error

// Bus is a concurrency-safe synchronous dispatcher. Handlers run
// sequentially during Publish, in registration order.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[NotificationType][]handler
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[NotificationType][]handler)}
}

// Subscribe registers a handler for the given notification type.
func (b *Bus) Subscribe(notificationType NotificationType, h func(Notification) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[notificationType] = append(b.subscribers[notificationType], h)
}

// Publish delivers the notification to every handler registered for its
// type. Handler errors and panics are logged and do not stop delivery.
func (b *Bus) Publish(n Notification) {
	b.mu.RLock()
	handlers := b.subscribers[n.Type]
	b.mu.RUnlock()

	for _, h := range handlers {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic for notification %s: %v", n.Type, r)
				}
			}()
			return h(n)
		}()
		if err != nil {
			log.Errorf("notification bus: handler error for %s: %v", n.Type, err)
		}
	}
}
