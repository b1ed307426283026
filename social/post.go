package social

import (
	"golang.org/x/xerrors"
)

// PostKind is the variant of a post.
type PostKind int

const (
	Text PostKind = iota
	Image
	Sale
)

// String returns the tag of the kind.
func (k PostKind) String() string {
	switch k {
	case Text:
		return "Text"
	case Image:
		return "Image"
	case Sale:
		return "Sale"
	default:
		return "Unknown"
	}
}

// ParsePostKind returns the kind with the given tag: Text, Image or Sale.
func ParsePostKind(tag string) (PostKind, error) {
	for _, k := range []PostKind{Text, Image, Sale} {
		if tag == k.String() {
			return k, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", tag, ErrInvalidVariant)
}

// PostContent is the payload of a post. The set of contents is closed:
// TextContent, ImageContent and SaleContent.
type PostContent interface {
	Kind() PostKind
	isPostContent()
}

// TextContent is the payload of a text post.
type TextContent struct {
	Text string
}

// ImageContent is the payload of an image post. Reference is opaque (a file
// path for the default displayer).
type ImageContent struct {
	Reference string
}

// SaleContent is the payload of a sale listing.
type SaleContent struct {
	Product  string
	Price    float64
	Location string
}

func (TextContent) Kind() PostKind { return Text }
func (ImageContent) Kind() PostKind { return Image }
func (SaleContent) Kind() PostKind { return Sale }

func (TextContent) isPostContent() {}
func (ImageContent) isPostContent() {}
func (SaleContent) isPostContent() {}

// Comment left on a post.
type Comment struct {
	Author User
	Text   string
}

// Post is the capability set shared by every post variant.
type Post interface {
	// ID returns the unique ID of the post.
	ID() string

	Kind() PostKind

	// Owner returns the user that published the post.
	Owner() User

	// Like records the like and notifies the owner.
	Like(u User)

	// Comment records the comment and notifies the owner.
	Comment(u User, text string)

	// Likes returns the likers in order. A user liking twice appears twice.
	Likes() []User

	// Comments returns the comments in order.
	Comments() []Comment

	String() string
}

// TextPost is a post holding a text.
type TextPost interface {
	Post
	GetText() string
}

// ImagePost is a post holding an image reference.
type ImagePost interface {
	Post
	GetReference() string
	// Display renders the image with the ImageDisplayer of the network.
	Display() error
}

// SalePost is a listing of a product for sale.
type SalePost interface {
	Post
	GetProduct() string
	GetPrice() float64
	GetLocation() string
	IsSold() bool

	// ApplyDiscount reduces the price by percent. It returns
	// ErrAuthorizationDeclined if credential isn't the owner's password.
	ApplyDiscount(percent float64, credential string) error

	// MarkSold marks the product as sold. It returns ErrAuthorizationDeclined
	// if credential isn't the owner's password.
	MarkSold(credential string) error
}
