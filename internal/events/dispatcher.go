package events

import (
	"context"
	"sync"
)

// ActivityHandler handles a published activity.
type ActivityHandler func(context.Context, Activity) error

// Dispatcher interface allows activity publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, activity Activity) error
	Subscribe(activityType ActivityType, handler ActivityHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[ActivityType][]ActivityHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[ActivityType][]ActivityHandler),
	}
}

// Publish synchronously invokes handlers for the given activity.
func (d *inMemoryDispatcher) Publish(ctx context.Context, activity Activity) error {
	d.mu.RLock()
	handlers := append([]ActivityHandler{}, d.listeners[activity.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, activity); err != nil {
			// continue processing other handlers despite errors
		}
	}
	return nil
}

// Subscribe registers a handler for the given activity type.
func (d *inMemoryDispatcher) Subscribe(activityType ActivityType, handler ActivityHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[activityType] = append(d.listeners[activityType], handler)
}
