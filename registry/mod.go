package registry

import (
	"github.com/minotor-team/socialsim/types"
)

// Registry defines a registry to process the events delivered to a user. It
// also keeps the history of the processed events.
type Registry interface {
	// RegisterEventCallback registers a function that will be executed for
	// that particular type of event by the ProcessEvent function. Registering
	// twice for the same type replaces the previous callback.
	RegisterEventCallback(types.Event, Exec)

	// ProcessEvent executes the registered callback based on the event name.
	// Events without a callback are still recorded and notified.
	ProcessEvent(types.Event) error

	// RegisterNotify registers an Exec function that will be called each time
	// ProcessEvent is called. The return error of Exec is not taken into
	// account.
	RegisterNotify(Exec)

	// GetEvents must return all the events processed so far with the
	// ProcessEvent function, in processing order.
	GetEvents() []types.Event
}

// Exec is the type of function executed as a handler on an event.
type Exec func(types.Event) error
