package impl

import (
	"fmt"
	"sync"

	"github.com/minotor-team/socialsim/datastructures"
	"github.com/minotor-team/socialsim/datastructures/concurrent"
	"github.com/minotor-team/socialsim/registry"
	"github.com/minotor-team/socialsim/registry/standard"
	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/types"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// UserNode is a user of the social network. It observes the users it follows
// and is observed by its followers.
//
// - implements social.User
type UserNode struct {
	id         string
	name       string
	credential credential
	factory    *PostFactory

	// followLock serializes Follow and Unfollow so that both sides of a
	// subscription change together.
	followLock  sync.Mutex
	following   concurrent.Map[social.Observable, social.User]
	subscribers *subscribers

	posts         concurrent.Slice[social.Post]
	feed          concurrent.Slice[social.Post]
	notifications concurrent.Slice[string]
	reg           registry.Registry
}

func newUserNode(name string, cred credential, factory *PostFactory) *UserNode {
	node := &UserNode{
		id:            xid.New().String(),
		name:          name,
		credential:    cred,
		factory:       factory,
		following:     concurrent.NewMap[social.Observable, social.User](),
		subscribers:   newSubscribers(),
		posts:         concurrent.NewSlice[social.Post](),
		feed:          concurrent.NewSlice[social.Post](),
		notifications: concurrent.NewSlice[string](),
		reg:           standard.NewRegistry(),
	}

	node.reg.RegisterEventCallback(types.PublicationEvent{}, node.execPublicationEvent)
	node.reg.RegisterEventCallback(types.LikeEvent{}, node.execReactionEvent)
	node.reg.RegisterEventCallback(types.CommentEvent{}, node.execReactionEvent)

	return node
}

// GetID returns the unique ID of the user. Usernames are only unique when
// sign up is validated.
func (n *UserNode) GetID() string {
	return n.id
}

func (n *UserNode) GetName() string {
	return n.name
}

func (n *UserNode) CheckPassword(credential string) bool {
	return n.credential.matches(credential)
}

func (n *UserNode) Follow(u social.User) error {
	if sameUser(n, u) {
		return xerrors.Errorf("%s: %w", n.name, social.ErrSelfFollow)
	}

	n.followLock.Lock()
	defer n.followLock.Unlock()

	if !n.following.AddIfAbsent(u.Subscribers(), u) {
		return nil
	}
	u.Subscribers().Attach(n)

	log.Info().Msgf("%s started following %s", n.name, u.GetName())
	return nil
}

func (n *UserNode) Unfollow(u social.User) error {
	n.followLock.Lock()
	defer n.followLock.Unlock()

	_, ok := n.following.Get(u.Subscribers())
	if !ok {
		return xerrors.Errorf("%s doesn't follow %s: %w", n.name, u.GetName(), social.ErrNotFound)
	}

	err := u.Subscribers().Detach(n)
	if err != nil {
		return xerrors.Errorf("failed to unfollow %s: %w", u.GetName(), err)
	}
	n.following.Delete(u.Subscribers())

	log.Info().Msgf("%s unfollowed %s", n.name, u.GetName())
	return nil
}

func (n *UserNode) IsFollowing(u social.User) bool {
	_, ok := n.following.Get(u.Subscribers())
	return ok
}

func (n *UserNode) Publish(content social.PostContent) (social.Post, error) {
	p, err := n.factory.CreatePost(n, content)
	if err != nil {
		return nil, xerrors.Errorf("failed to publish: %w", err)
	}

	n.posts.Append(p)
	n.subscribers.NotifyNewPost(p)

	log.Info().
		Str("post", p.ID()).
		Str("kind", p.Kind().String()).
		Int("followers", n.subscribers.Size()).
		Msg(p.String())
	return p, nil
}

func (n *UserNode) PublishTag(tag string, args ...string) (social.Post, error) {
	content, err := ParseContent(tag, args...)
	if err != nil {
		return nil, xerrors.Errorf("failed to publish: %w", err)
	}
	return n.Publish(content)
}

func (n *UserNode) Subscribers() social.Observable {
	return n.subscribers
}

func (n *UserNode) GetFollowing() []social.User {
	following := n.following.Entries()
	res := make([]social.User, 0, len(following))
	for _, u := range following {
		res = append(res, u)
	}
	return res
}

func (n *UserNode) GetFollowers() []social.User {
	observers := datastructures.Filter(n.subscribers.Observers(), func(o social.Observer) bool {
		_, ok := o.(social.User)
		return ok
	})
	return datastructures.Map(observers, func(o social.Observer) social.User {
		return o.(social.User)
	})
}

func (n *UserNode) GetPosts() []social.Post {
	return n.posts.Elements()
}

func (n *UserNode) GetFeed() []social.Post {
	return n.feed.Elements()
}

func (n *UserNode) GetNotifications() []string {
	return n.notifications.Elements()
}

func (n *UserNode) RegisterNotify(exec registry.Exec) {
	n.reg.RegisterNotify(exec)
}

// OnNewPost implements social.Observer.
func (n *UserNode) OnNewPost(p social.Post) {
	n.feed.Append(p)
	n.processEvent(types.PublicationEvent{
		To:     n.name,
		PostID: p.ID(),
		Author: p.Owner().GetName(),
		Kind:   p.Kind().String(),
	})
}

// OnLike implements social.Observer.
func (n *UserNode) OnLike(p social.Post, liker social.User) {
	n.processEvent(types.LikeEvent{
		To:     n.name,
		PostID: p.ID(),
		Liker:  liker.GetName(),
	})
}

// OnComment implements social.Observer.
func (n *UserNode) OnComment(p social.Post, commenter social.User, text string) {
	n.processEvent(types.CommentEvent{
		To:        n.name,
		PostID:    p.ID(),
		Commenter: commenter.GetName(),
		Text:      text,
	})
}

func (n *UserNode) String() string {
	return fmt.Sprintf("User name: %s, Number of posts: %d, Number of followers: %d",
		n.name, n.posts.Len(), n.subscribers.Size())
}

func (n *UserNode) processEvent(e types.Event) {
	err := n.reg.ProcessEvent(e)
	if err != nil {
		log.Err(err).Str("user", n.name).Msg("failed to process event")
	}
}

func (n *UserNode) execPublicationEvent(e types.Event) error {
	n.notifications.Append(e.String())
	log.Debug().Str("user", n.name).Msg(e.String())
	return nil
}

func (n *UserNode) execReactionEvent(e types.Event) error {
	n.notifications.Append(e.String())
	log.Info().Str("user", n.name).Msg(e.String())
	return nil
}
