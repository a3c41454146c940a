// internal/event/event.go
package event

// EventType is the kind of an event.
type EventType string

// Event is a typed payload sent through the Dispatcher.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeFunc registers a function for events of type t.
func (d *Dispatcher) SubscribeFunc(t EventType, fn func(Event)) {
	d.Subscribe(t, ListenerFunc(fn))
}

// Dispatch sends e to every listener of its type. A nil Dispatcher drops it.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// Message is shorthand for dispatching a player-facing Message.
func (d *Dispatcher) Message(text string) {
	d.Dispatch(Event{Type: Message, Data: text})
}
