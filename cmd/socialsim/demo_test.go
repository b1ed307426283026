package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/impl"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func Test_Demo(t *testing.T) {
	conf := social.NewConfiguration("MinoTor")
	conf.PasswordCost = bcrypt.MinCost
	network := impl.NewNetwork(conf)

	out := &bytes.Buffer{}
	require.NoError(t, runDemo(network, out))

	output := out.String()
	require.Contains(t, output, "Cecilia posted a product for sale:\nSold! Toy, price: 36.45, pickup from: Haifa")
	require.Contains(t, output, "User name: Alice, Number of posts: 1, Number of followers: 2")
	require.Contains(t, output, "Alice received a notification about a new like from Bob")
	require.Contains(t, output, "Alice received a notification about a new comment from Cecilia")
	// Bob liking his own image isn't notified
	require.Equal(t, 0, strings.Count(output, "Bob received a notification about a new like from Bob"))
	require.Len(t, network.GetUsers(), 3)
}

func Test_Demo_Fails_With_Strict_Passwords(t *testing.T) {
	conf := social.NewConfiguration("MinoTor")
	conf.PasswordCost = bcrypt.MinCost
	conf.MaxPasswordLength = 4

	err := runDemo(impl.NewNetwork(conf), &bytes.Buffer{})
	require.ErrorIs(t, err, social.ErrInvalidPasswordLength)
}
