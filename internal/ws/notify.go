package ws

import (
	"encoding/json"
	"sync/atomic"

	"jobboard-ai/internal/events"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyEvent broadcasts a notification event to every connected client.
// No-op when no hub is installed.
func NotifyEvent(evt events.Event) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
