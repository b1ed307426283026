package social

import (
	"github.com/minotor-team/socialsim/registry"
)

// Observer is notified of the events of the users it follows and of the
// reactions to its own posts.
type Observer interface {
	// OnNewPost is called when a followed user publishes a post.
	OnNewPost(p Post)

	// OnLike is called when one of the observer's posts is liked.
	OnLike(p Post, liker User)

	// OnComment is called when one of the observer's posts is commented.
	OnComment(p Post, commenter User, text string)
}

// Observable is the set of followers of a user.
type Observable interface {
	// Attach adds the observer. Attaching an observer twice is a no-op.
	Attach(o Observer)

	// Detach removes the observer, it returns ErrNotFound if the observer
	// was never attached.
	Detach(o Observer) error

	// Contains returns true iff the observer is attached.
	Contains(o Observer) bool

	// Observers returns a snapshot of the attached observers.
	Observers() []Observer

	// Size returns the number of attached observers.
	Size() int

	// NotifyNewPost delivers the post to every attached observer.
	NotifyNewPost(p Post)

	// NotifyLike delivers the like to the owner of the post only.
	NotifyLike(p Post, liker User)

	// NotifyComment delivers the comment to the owner of the post only.
	NotifyComment(p Post, commenter User, text string)
}

// Define the capabilities of a user of the social network
type User interface {
	Observer

	// GetName returns the username.
	GetName() string

	// CheckPassword returns true iff the credential matches the password of
	// the user.
	CheckPassword(credential string) bool

	// Follow subscribes to the posts of the given user.
	Follow(u User) error

	// Unfollow cancels a subscription made with Follow.
	Unfollow(u User) error

	// IsFollowing returns true iff the user follows u.
	IsFollowing(u User) bool

	// Publish creates a post from the content, stores it and notifies every
	// follower.
	Publish(content PostContent) (Post, error)

	// PublishTag is Publish for a post kind given by its tag, with the
	// arguments of the kind given as strings.
	PublishTag(tag string, args ...string) (Post, error)

	// Subscribers returns the followers of the user.
	Subscribers() Observable

	// GetFollowing returns the users followed by this user.
	GetFollowing() []User

	// GetFollowers returns the users following this user.
	GetFollowers() []User

	// GetPosts returns the published posts in publication order.
	GetPosts() []Post

	// GetFeed returns the posts received from followed users, in delivery
	// order.
	GetFeed() []Post

	// GetNotifications returns the notification log in delivery order.
	GetNotifications() []string

	// RegisterNotify registers a function called with every event delivered
	// to the user.
	RegisterNotify(registry.Exec)

	String() string
}
