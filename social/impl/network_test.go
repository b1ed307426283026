package impl_test

import (
	"strings"
	"testing"

	z "github.com/minotor-team/socialsim/internal/testing"
	"github.com/minotor-team/socialsim/social"
	"github.com/stretchr/testify/require"
)

func Test_Network_SignUp(t *testing.T) {
	n := z.NewTestNetwork(t, z.WithPlatformName("N"))
	require.Equal(t, "N", n.GetName())

	alice := n.MustSignUp("alice", "pass1")
	require.Equal(t, "alice", alice.GetName())
	require.True(t, alice.CheckPassword("pass1"))
	require.False(t, alice.CheckPassword("pass2"))

	u, ok := n.GetUser("alice")
	require.True(t, ok)
	require.Equal(t, alice, u)

	_, ok = n.GetUser("bob")
	require.False(t, ok)
}

func Test_Network_SignUp_Rejects_Password_Length(t *testing.T) {
	n := z.NewTestNetwork(t)

	u, err := n.SignUp("alice", "abc")
	require.ErrorIs(t, err, social.ErrInvalidPasswordLength)
	require.Nil(t, u)

	_, err = n.SignUp("alice", "abcdefghi")
	require.ErrorIs(t, err, social.ErrInvalidPasswordLength)
	require.Empty(t, n.GetUsers())

	n.MustSignUp("alice", "abcd")
	n.MustSignUp("bob", "abcdefgh")
	require.Len(t, n.GetUsers(), 2)
}

func Test_Network_SignUp_Custom_Password_Length(t *testing.T) {
	n := z.NewTestNetwork(t, z.WithPasswordLength(1, 2))

	_, err := n.SignUp("alice", "pass1")
	require.ErrorIs(t, err, social.ErrInvalidPasswordLength)
	n.MustSignUp("alice", "p")
}

func Test_Network_SignUp_Rejects_Duplicate_Username(t *testing.T) {
	n := z.NewTestNetwork(t)
	alice := n.MustSignUp("alice", "pass1")

	u, err := n.SignUp("alice", "other")
	require.ErrorIs(t, err, social.ErrDuplicateUsername)
	require.Nil(t, u)
	require.Equal(t, []social.User{alice}, n.GetUsers())
}

func Test_Network_Legacy_SignUp_Accepts_Anything(t *testing.T) {
	n := z.NewTestNetwork(t, z.WithLegacySignUp())

	first := n.MustSignUp("alice", "p")
	second := n.MustSignUp("alice", strings.Repeat("x", 20))
	require.Len(t, n.GetUsers(), 2)

	// the first user with the name is found first
	u, ok := n.GetUser("alice")
	require.True(t, ok)
	require.Equal(t, first, u)

	// log in still matches on both name and password
	u, err := n.LogIn("alice", strings.Repeat("x", 20))
	require.NoError(t, err)
	require.Equal(t, second, u)
}

func Test_Network_LogIn(t *testing.T) {
	n := z.NewTestNetwork(t)
	alice := n.MustSignUp("alice", "pass1")
	n.MustSignUp("bob", "pass2")

	u, err := n.LogIn("alice", "pass1")
	require.NoError(t, err)
	require.Equal(t, alice, u)

	u, err = n.LogIn("alice", "pass2")
	require.ErrorIs(t, err, social.ErrInvalidCredentials)
	require.Nil(t, u)

	_, err = n.LogIn("carol", "pass1")
	require.ErrorIs(t, err, social.ErrInvalidCredentials)

	n.LogOut("alice")
	u, err = n.LogIn("alice", "pass1")
	require.NoError(t, err)
	require.Equal(t, alice, u)
}

func Test_Network_Users_Keep_Sign_Up_Order(t *testing.T) {
	n := z.NewTestNetwork(t)
	names := []string{"alice", "bob", "carol", "dave"}
	for _, name := range names {
		n.MustSignUp(name, "pass")
	}

	users := n.GetUsers()
	require.Len(t, users, len(names))
	for i, u := range users {
		require.Equal(t, names[i], u.GetName())
	}
}

func Test_Network_Long_Passwords_Compare_Exactly(t *testing.T) {
	long := strings.Repeat("x", 100)
	sameStart := strings.Repeat("x", 99) + "y"

	n := z.NewTestNetwork(t, z.WithLegacySignUp())
	alice := n.MustSignUp("alice", long)
	require.True(t, alice.CheckPassword(long))
	require.False(t, alice.CheckPassword(sameStart))

	u, err := n.LogIn("alice", long)
	require.NoError(t, err)
	require.Equal(t, alice, u)

	_, err = n.LogIn("alice", sameStart)
	require.ErrorIs(t, err, social.ErrInvalidCredentials)

	n = z.NewTestNetwork(t, z.WithPasswordLength(4, 200))
	bob := n.MustSignUp("bob", long)
	require.True(t, bob.CheckPassword(long))
}
