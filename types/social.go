package types

import "fmt"

// -----------------------------------------------------------------------------
// PublicationEvent

// Name implements types.Event.
func (e PublicationEvent) Name() string {
	return "publication"
}

// Recipient implements types.Event.
func (e PublicationEvent) Recipient() string {
	return e.To
}

// String implements types.Event.
func (e PublicationEvent) String() string {
	return fmt.Sprintf("%s received a notification about a new post from %s", e.To, e.Author)
}

// -----------------------------------------------------------------------------
// LikeEvent

// Name implements types.Event.
func (e LikeEvent) Name() string {
	return "like"
}

// Recipient implements types.Event.
func (e LikeEvent) Recipient() string {
	return e.To
}

// String implements types.Event.
func (e LikeEvent) String() string {
	return fmt.Sprintf("%s received a notification about a new like from %s", e.To, e.Liker)
}

// -----------------------------------------------------------------------------
// CommentEvent

// Name implements types.Event.
func (e CommentEvent) Name() string {
	return "comment"
}

// Recipient implements types.Event.
func (e CommentEvent) Recipient() string {
	return e.To
}

// String implements types.Event.
func (e CommentEvent) String() string {
	return fmt.Sprintf("%s received a notification about a new comment from %s", e.To, e.Commenter)
}
