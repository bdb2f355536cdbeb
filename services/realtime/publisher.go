package realtime

import "log"

// Publisher fans an event out to everyone listening on a room. The concrete
// transport lives outside this service; anything with a Publish method can be
// plugged in.
type Publisher interface {
	Publish(room string, event string, payload interface{}) error
}

// consolePublisher logs events instead of broadcasting them. Default until a
// real transport is registered.
type consolePublisher struct{}

func (consolePublisher) Publish(room string, event string, payload interface{}) error {
	log.Printf("[REALTIME] room=%s event=%s payload=%v", room, event, payload)
	return nil
}

var current Publisher = consolePublisher{}

// SetPublisher swaps the active publisher. Passing nil is ignored.
func SetPublisher(p Publisher) {
	if p != nil {
		current = p
	}
}

// Publish sends an event through the active publisher. Broadcast failures are
// logged and swallowed; notification is never essential to the request.
func Publish(room string, event string, payload interface{}) {
	if err := current.Publish(room, event, payload); err != nil {
		log.Printf("Realtime publish failed for room %s event %s: %v", room, event, err)
	}
}
