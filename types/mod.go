package types

// Event is an occurrence delivered to a user of the social network. Its
// String representation is the human-readable notification recorded in the
// user's notification log.
type Event interface {
	// Name returns the name of the event kind. Callbacks are registered
	// against it.
	Name() string

	// Recipient returns the username of the user the event is delivered to.
	Recipient() string

	String() string
}
