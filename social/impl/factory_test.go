package impl_test

import (
	"testing"

	z "github.com/minotor-team/socialsim/internal/testing"
	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/impl"
	"github.com/stretchr/testify/require"
)

func Test_Factory_CreatePost_Variants(t *testing.T) {
	n := z.NewTestNetwork(t)
	bob := n.MustSignUp("bob", "pass2")
	factory := impl.NewPostFactory(nil)

	p, err := factory.CreatePost(bob, social.TextContent{Text: "hello"})
	require.NoError(t, err)
	require.IsType(t, &impl.TextPost{}, p)

	p, err = factory.CreatePost(bob, social.ImageContent{Reference: "image1.jpg"})
	require.NoError(t, err)
	require.IsType(t, &impl.ImagePost{}, p)
	// without displayer, displaying only logs
	require.NoError(t, p.(social.ImagePost).Display())

	p, err = factory.CreatePost(bob, social.SaleContent{Product: "bike", Price: 10, Location: "Haifa"})
	require.NoError(t, err)
	require.IsType(t, &impl.SalePost{}, p)
	require.Equal(t, bob, p.Owner())

	// a factory doesn't store the post
	require.Empty(t, bob.GetPosts())
}

func Test_Factory_CreatePost_Without_Content(t *testing.T) {
	n := z.NewTestNetwork(t)
	bob := n.MustSignUp("bob", "pass2")

	_, err := impl.NewPostFactory(nil).CreatePost(bob, nil)
	require.ErrorIs(t, err, social.ErrInvalidVariant)
}

func Test_Factory_CreateFromTag(t *testing.T) {
	n := z.NewTestNetwork(t)
	bob := n.MustSignUp("bob", "pass2")
	factory := impl.NewPostFactory(nil)

	p, err := factory.CreateFromTag(bob, "Sale", "bike", "99.5", "Haifa")
	require.NoError(t, err)
	sale, ok := p.(social.SalePost)
	require.True(t, ok)
	require.Equal(t, 99.5, sale.GetPrice())

	p, err = factory.CreateFromTag(bob, "Text", "hello")
	require.NoError(t, err)
	require.Equal(t, social.Text, p.Kind())

	_, err = factory.CreateFromTag(bob, "Video", "clip.mp4")
	require.ErrorIs(t, err, social.ErrInvalidVariant)
}

func Test_ParseContent_Invalid_Arguments(t *testing.T) {
	_, err := impl.ParseContent("Text")
	require.ErrorIs(t, err, social.ErrInvalidArguments)

	_, err = impl.ParseContent("Image", "a.png", "b.png")
	require.ErrorIs(t, err, social.ErrInvalidArguments)

	_, err = impl.ParseContent("Sale", "bike", "cheap", "Haifa")
	require.ErrorIs(t, err, social.ErrInvalidArguments)

	_, err = impl.ParseContent("Sale", "bike", "10")
	require.ErrorIs(t, err, social.ErrInvalidArguments)

	content, err := impl.ParseContent("Image", "a.png")
	require.NoError(t, err)
	require.Equal(t, social.ImageContent{Reference: "a.png"}, content)
}
