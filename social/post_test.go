package social_test

import (
	"testing"

	"github.com/minotor-team/socialsim/social"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func Test_ParsePostKind(t *testing.T) {
	for tag, kind := range map[string]social.PostKind{
		"Text":  social.Text,
		"Image": social.Image,
		"Sale":  social.Sale,
	} {
		k, err := social.ParsePostKind(tag)
		require.NoError(t, err)
		require.Equal(t, kind, k)
	}

	for _, tag := range []string{"Video", "image", "SALE", ""} {
		_, err := social.ParsePostKind(tag)
		require.True(t, xerrors.Is(err, social.ErrInvalidVariant), tag)
	}
}

func Test_PostContent_Kind(t *testing.T) {
	require.Equal(t, social.Text, social.TextContent{Text: "hi"}.Kind())
	require.Equal(t, social.Image, social.ImageContent{Reference: "a.png"}.Kind())
	require.Equal(t, social.Sale, social.SaleContent{Product: "bike"}.Kind())
	require.Equal(t, "Sale", social.Sale.String())
	require.Equal(t, "Unknown", social.PostKind(42).String())
}
