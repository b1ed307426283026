package testing

import (
	"sync"

	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/impl"
	"github.com/stretchr/testify/require"
)

// TestNetwork is a network whose helpers fail the test on error.
type TestNetwork struct {
	*impl.Network
	t require.TestingT
}

// NewTestNetwork creates a network configured for tests.
func NewTestNetwork(t require.TestingT, opts ...Option) TestNetwork {
	template := newConfigTemplate()
	for _, opt := range opts {
		opt(&template)
	}

	return TestNetwork{
		Network: impl.NewNetwork(template.configuration()),
		t:       t,
	}
}

// MustSignUp signs up a user.
func (n TestNetwork) MustSignUp(username, password string) social.User {
	u, err := n.SignUp(username, password)
	require.NoError(n.t, err)
	require.NotNil(n.t, u)
	return u
}

// MustFollow makes follower follow followed.
func (n TestNetwork) MustFollow(follower, followed social.User) {
	err := follower.Follow(followed)
	require.NoError(n.t, err)
}

// MustPublish publishes the content as u.
func (n TestNetwork) MustPublish(u social.User, content social.PostContent) social.Post {
	p, err := u.Publish(content)
	require.NoError(n.t, err)
	return p
}

// RecordingDisplayer is an image displayer that records the displayed
// references and returns Err.
type RecordingDisplayer struct {
	lock      sync.Mutex
	displayed []string
	Err       error
}

func (d *RecordingDisplayer) Display(reference string) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.displayed = append(d.displayed, reference)
	return d.Err
}

// GetDisplayed returns the displayed references in order.
func (d *RecordingDisplayer) GetDisplayed() []string {
	d.lock.Lock()
	defer d.lock.Unlock()
	res := make([]string, len(d.displayed))
	copy(res, d.displayed)
	return res
}
