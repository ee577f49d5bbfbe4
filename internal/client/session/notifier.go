package session

import "sync"

// EventSessionChanged is the process-wide name of the broadcast, used in logs.
const EventSessionChanged = "session-changed"

// Listener is invoked with no payload; it should re-read the Store.
type Listener func()

type Notifier struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]Listener
}

func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[uint64]Listener)}
}

// Subscribe registers l and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (n *Notifier) Subscribe(l Listener) (unsubscribe func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.listeners[id] = l
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Notify calls every current listener synchronously. Listeners may
// subscribe, unsubscribe or notify from inside the callback.
func (n *Notifier) Notify() {
	n.mu.Lock()
	snapshot := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		snapshot = append(snapshot, l)
	}
	n.mu.Unlock()

	for _, l := range snapshot {
		l()
	}
}

// Len reports the number of subscribed listeners.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
