package impl

import (
	"strconv"

	"github.com/minotor-team/socialsim/social"
	"golang.org/x/xerrors"
)

// PostFactory builds the post variant matching a post content.
type PostFactory struct {
	displayer social.ImageDisplayer
}

// NewPostFactory returns a factory whose image posts are displayed with the
// given displayer.
func NewPostFactory(displayer social.ImageDisplayer) *PostFactory {
	if displayer == nil {
		displayer = logImageDisplayer{}
	}
	return &PostFactory{
		displayer: displayer,
	}
}

// CreatePost returns a new post of the kind of the content, owned by owner.
func (f *PostFactory) CreatePost(owner social.User, content social.PostContent) (social.Post, error) {
	switch c := content.(type) {
	case social.TextContent:
		return newTextPost(owner, c), nil
	case social.ImageContent:
		return newImagePost(owner, c, f.displayer), nil
	case social.SaleContent:
		return newSalePost(owner, c), nil
	default:
		return nil, xerrors.Errorf("unsupported content %T: %w", content, social.ErrInvalidVariant)
	}
}

// CreateFromTag returns a new post of the kind named by tag. The arguments are
// the text for "Text", the image reference for "Image" and the product, the
// price and the pickup location for "Sale".
func (f *PostFactory) CreateFromTag(owner social.User, tag string, args ...string) (social.Post, error) {
	content, err := ParseContent(tag, args...)
	if err != nil {
		return nil, xerrors.Errorf("failed to create post: %w", err)
	}
	return f.CreatePost(owner, content)
}

// ParseContent builds the content of the kind named by tag from its arguments.
func ParseContent(tag string, args ...string) (social.PostContent, error) {
	kind, err := social.ParsePostKind(tag)
	if err != nil {
		return nil, err
	}

	switch kind {
	case social.Text:
		if len(args) != 1 {
			return nil, arityError(kind, 1, len(args))
		}
		return social.TextContent{Text: args[0]}, nil
	case social.Image:
		if len(args) != 1 {
			return nil, arityError(kind, 1, len(args))
		}
		return social.ImageContent{Reference: args[0]}, nil
	case social.Sale:
		if len(args) != 3 {
			return nil, arityError(kind, 3, len(args))
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, xerrors.Errorf("invalid price %q: %w", args[1], social.ErrInvalidArguments)
		}
		return social.SaleContent{Product: args[0], Price: price, Location: args[2]}, nil
	default:
		return nil, xerrors.Errorf("%v: %w", kind, social.ErrInvalidVariant)
	}
}

func arityError(kind social.PostKind, expected, got int) error {
	return xerrors.Errorf("%v post expects %d arguments, got %d: %w",
		kind, expected, got, social.ErrInvalidArguments)
}
