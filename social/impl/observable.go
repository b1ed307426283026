package impl

import (
	"github.com/minotor-team/socialsim/datastructures/concurrent"
	"github.com/minotor-team/socialsim/social"
	"golang.org/x/xerrors"
)

// subscribers is the set of followers of a user.
//
// - implements social.Observable
type subscribers struct {
	observers concurrent.Set[social.Observer]
}

func newSubscribers() *subscribers {
	return &subscribers{
		observers: concurrent.NewSet[social.Observer](),
	}
}

func (s *subscribers) Attach(o social.Observer) {
	s.observers.Add(o)
}

func (s *subscribers) Detach(o social.Observer) error {
	if !s.observers.Remove(o) {
		return xerrors.Errorf("failed to detach observer: %w", social.ErrNotFound)
	}
	return nil
}

func (s *subscribers) Contains(o social.Observer) bool {
	return s.observers.Contains(o)
}

func (s *subscribers) Observers() []social.Observer {
	return s.observers.Values().ToArray()
}

func (s *subscribers) Size() int {
	return int(s.observers.Size())
}

// NotifyNewPost delivers to a snapshot of the followers, observers may
// follow or unfollow while being notified.
func (s *subscribers) NotifyNewPost(p social.Post) {
	for o := range s.observers.Values() {
		o.OnNewPost(p)
	}
}

func (s *subscribers) NotifyLike(p social.Post, liker social.User) {
	p.Owner().OnLike(p, liker)
}

func (s *subscribers) NotifyComment(p social.Post, commenter social.User, text string) {
	p.Owner().OnComment(p, commenter, text)
}
