package automation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/minotor-team/socialsim/social"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Cluster is a group of automated users of the same network. Half of them,
// drawn at random, are fans and the others are critics.
type Cluster struct {
	network social.Network
	rand    *rand.Rand
	users   []*ReactorUser
	rounds  int
}

// Stats summarizes the activity of a cluster.
type Stats struct {
	Users         int
	Follows       int
	Posts         int
	Notifications int
	Likes         int
	Comments      int
}

// NewCluster signs up 'size' users named user0, user1, ... The same seed
// gives the same cluster.
func NewCluster(network social.Network, size int, seed int64) (*Cluster, error) {
	if size < 1 {
		return nil, xerrors.Errorf("a cluster needs at least one user, got %d", size)
	}

	c := &Cluster{
		network: network,
		rand:    rand.New(rand.NewSource(seed)),
		users:   make([]*ReactorUser, size),
	}

	conf := network.GetConfiguration()
	for i := 0; i < size; i++ {
		u, err := network.SignUp(fmt.Sprintf("user%d", i), clusterPassword(conf, i))
		if err != nil {
			return nil, xerrors.Errorf("failed to create cluster: %w", err)
		}

		if c.rand.Float64() < 0.5 {
			c.users[i] = NewFanUser(u)
		} else {
			c.users[i] = NewCriticUser(u, "interesting")
		}
	}

	return c, nil
}

// SetUpFollowings makes each user follow each other user with probability
// 'followProbability'.
func (c *Cluster) SetUpFollowings(followProbability float64) error {
	for _, u := range c.users {
		for _, other := range c.users {
			if u == other || c.rand.Float64() >= followProbability {
				continue
			}
			err := u.Follow(other.User)
			if err != nil {
				return xerrors.Errorf("failed to set up followings: %w", err)
			}
		}
	}
	return nil
}

// PublishRound makes every user publish one text post.
func (c *Cluster) PublishRound() error {
	c.rounds++
	for _, u := range c.users {
		text := fmt.Sprintf("post %d from %s", c.rounds, u.GetName())
		_, err := u.Publish(social.TextContent{Text: text})
		if err != nil {
			return xerrors.Errorf("failed to publish round %d: %w", c.rounds, err)
		}
	}
	log.Debug().Int("round", c.rounds).Msg("round published")
	return nil
}

func (c *Cluster) GetUsers() []*ReactorUser {
	return c.users
}

func (c *Cluster) Stats() Stats {
	stats := Stats{Users: len(c.users)}
	for _, u := range c.users {
		stats.Follows += len(u.GetFollowing())
		stats.Notifications += len(u.GetNotifications())
		for _, p := range u.GetPosts() {
			stats.Posts++
			stats.Likes += len(p.Likes())
			stats.Comments += len(p.Comments())
		}
	}
	return stats
}

// clusterPassword returns passN, cut or padded to fit the password length
// bounds of the network. Passwords may collide, usernames don't.
func clusterPassword(conf social.Configuration, i int) string {
	password := fmt.Sprintf("pass%d", i)
	if !conf.ValidateSignUp {
		return password
	}

	if upper := int(conf.MaxPasswordLength); len(password) > upper {
		password = password[len(password)-upper:]
	}
	if lower := int(conf.MinPasswordLength); len(password) < lower {
		password = strings.Repeat("x", lower-len(password)) + password
	}
	return password
}
