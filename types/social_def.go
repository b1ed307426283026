package types

// PublicationEvent is delivered to every follower of Author when Author
// publishes a post.
type PublicationEvent struct {
	To     string
	PostID string
	Author string
	// Kind of the post, as returned by social.PostKind.String
	Kind string
}

// LikeEvent is delivered to the owner of a post when it is liked.
type LikeEvent struct {
	To     string
	PostID string
	Liker  string
}

// CommentEvent is delivered to the owner of a post when it is commented.
type CommentEvent struct {
	To        string
	PostID    string
	Commenter string
	Text      string
}
