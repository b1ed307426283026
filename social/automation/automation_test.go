package automation_test

import (
	"testing"

	z "github.com/minotor-team/socialsim/internal/testing"
	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/automation"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func Test_FanUser_Likes_Every_Post(t *testing.T) {
	n := z.NewTestNetwork(t)
	fan := automation.NewFanUser(n.MustSignUp("alice", "pass1"))
	bob := n.MustSignUp("bob", "pass2")

	n.MustFollow(fan, bob)
	first := n.MustPublish(bob, social.TextContent{Text: "hello"})
	second := n.MustPublish(bob, social.ImageContent{Reference: "image1.jpg"})

	require.Len(t, first.Likes(), 1)
	require.Len(t, second.Likes(), 1)
	require.Equal(t, map[string]map[string]automation.Reaction{
		"bob": {first.ID(): automation.Like, second.ID(): automation.Like},
	}, fan.GetReactions())
	require.Len(t, bob.GetNotifications(), 2)
}

func Test_CriticUser_Comments_Every_Post(t *testing.T) {
	n := z.NewTestNetwork(t)
	critic := automation.NewCriticUser(n.MustSignUp("alice", "pass1"), "meh")
	bob := n.MustSignUp("bob", "pass2")

	n.MustFollow(critic, bob)
	p := n.MustPublish(bob, social.TextContent{Text: "hello"})

	require.Empty(t, p.Likes())
	require.Equal(t, []social.Comment{{Author: critic.User, Text: "meh"}}, p.Comments())
	require.Equal(t, automation.Comment, critic.GetReactions()["bob"][p.ID()])
	require.Equal(t, "comment", automation.Comment.String())
}

func Test_Reactor_Failure_Does_Not_Break_Publish(t *testing.T) {
	n := z.NewTestNetwork(t)
	reactor := automation.NewReactorUser(n.MustSignUp("alice", "pass1"), func(p social.Post) (automation.Reaction, error) {
		return automation.Like, xerrors.New("not in the mood")
	})
	bob := n.MustSignUp("bob", "pass2")

	n.MustFollow(reactor, bob)
	n.MustPublish(bob, social.TextContent{Text: "hello"})

	require.Empty(t, reactor.GetReactions())
	require.Len(t, reactor.GetNotifications(), 1)
}

func Test_Cluster_Fully_Connected(t *testing.T) {
	n := z.NewTestNetwork(t)
	size := 5

	c, err := automation.NewCluster(n, size, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetUpFollowings(1))
	require.NoError(t, c.PublishRound())

	stats := c.Stats()
	require.Equal(t, size, stats.Users)
	require.Equal(t, size*(size-1), stats.Follows)
	require.Equal(t, size, stats.Posts)
	require.Equal(t, size*(size-1), stats.Likes+stats.Comments)
	// one notification per received post and one per reaction to own post
	require.Equal(t, 2*size*(size-1), stats.Notifications)
}

func Test_Cluster_Is_Deterministic(t *testing.T) {
	run := func() automation.Stats {
		n := z.NewTestNetwork(t)
		c, err := automation.NewCluster(n, 8, 42)
		require.NoError(t, err)
		require.NoError(t, c.SetUpFollowings(0.3))
		require.NoError(t, c.PublishRound())
		require.NoError(t, c.PublishRound())
		return c.Stats()
	}

	require.Equal(t, run(), run())
}

func Test_Cluster_Without_Users(t *testing.T) {
	n := z.NewTestNetwork(t)
	_, err := automation.NewCluster(n, 0, 1)
	require.Error(t, err)
}

func Test_Cluster_Passwords_Fit_Length_Bounds(t *testing.T) {
	n := z.NewTestNetwork(t, z.WithPasswordLength(5, 6))
	c, err := automation.NewCluster(n, 120, 1)
	require.NoError(t, err)
	require.Len(t, c.GetUsers(), 120)

	n = z.NewTestNetwork(t, z.WithPasswordLength(8, 8))
	_, err = automation.NewCluster(n, 3, 1)
	require.NoError(t, err)
	require.Len(t, n.GetUsers(), 3)
}
