package automation

import (
	"sync"

	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/types"
	"golang.org/x/xerrors"
)

// Reaction of an automated user to a post.
type Reaction int

const (
	Like Reaction = iota
	Comment
)

func (r Reaction) String() string {
	if r == Like {
		return "like"
	}
	return "comment"
}

// Define a user that automatically reacts to the posts of the users it
// follows.
type ReactorUser struct {
	// extends social.User
	social.User
	react         func(social.Post) (Reaction, error)
	reactionsLock sync.Mutex
	reactions     map[string]map[string]Reaction
}

// Creates a ReactorUser that reacts to new posts with 'react'.
func NewReactorUser(u social.User, react func(social.Post) (Reaction, error)) *ReactorUser {
	node := ReactorUser{
		User:      u,
		react:     react,
		reactions: make(map[string]map[string]Reaction),
	}
	u.RegisterNotify(node.handlePublicationEvent)
	return &node
}

// Creates a user that likes every post it receives.
func NewFanUser(u social.User) *ReactorUser {
	return NewReactorUser(u, func(p social.Post) (Reaction, error) {
		p.Like(u)
		return Like, nil
	})
}

// Creates a user that comments every post it receives with 'text'.
func NewCriticUser(u social.User, text string) *ReactorUser {
	return NewReactorUser(u, func(p social.Post) (Reaction, error) {
		p.Comment(u, text)
		return Comment, nil
	})
}

// Handle PublicationEvent.
// 1. Find the post in the feed
// 2. React to the post
func (n *ReactorUser) handlePublicationEvent(e types.Event) error {
	pub, ok := e.(types.PublicationEvent)
	if !ok {
		return nil
	}

	p, found := n.findInFeed(pub.PostID)
	if !found {
		return xerrors.Errorf("post %s is not in the feed of %s", pub.PostID, n.GetName())
	}

	reaction, err := n.react(p)
	if err != nil {
		return xerrors.Errorf("error when reacting to post: %v", err)
	}

	n.addReaction(pub.Author, pub.PostID, reaction)
	return nil
}

func (n *ReactorUser) findInFeed(id string) (social.Post, bool) {
	feed := n.GetFeed()
	for i := len(feed) - 1; i >= 0; i-- {
		if feed[i].ID() == id {
			return feed[i], true
		}
	}
	return nil, false
}

func (n *ReactorUser) addReaction(author string, id string, value Reaction) {
	n.reactionsLock.Lock()
	defer n.reactionsLock.Unlock()
	r, ok := n.reactions[author]
	if !ok {
		r = make(map[string]Reaction)
		n.reactions[author] = r
	}
	r[id] = value
}

// GetReactions returns, for every author, the reaction to each of its posts.
func (n *ReactorUser) GetReactions() map[string]map[string]Reaction {
	n.reactionsLock.Lock()
	defer n.reactionsLock.Unlock()
	res := make(map[string]map[string]Reaction)
	for author, val := range n.reactions {
		inMap := make(map[string]Reaction)
		for id, v := range val {
			inMap[id] = v
		}
		res[author] = inMap
	}
	return res
}
