package impl

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/minotor-team/socialsim/social"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// post holds the state shared by every post variant.
type post struct {
	sync.RWMutex
	id       string
	owner    social.User
	likes    []social.User
	comments []social.Comment
}

func newPost(owner social.User) post {
	return post{
		id:       xid.New().String(),
		owner:    owner,
		likes:    make([]social.User, 0),
		comments: make([]social.Comment, 0),
	}
}

func (p *post) ID() string {
	return p.id
}

func (p *post) Owner() social.User {
	return p.owner
}

func (p *post) Likes() []social.User {
	p.RLock()
	defer p.RUnlock()
	res := make([]social.User, len(p.likes))
	copy(res, p.likes)
	return res
}

func (p *post) Comments() []social.Comment {
	p.RLock()
	defer p.RUnlock()
	res := make([]social.Comment, len(p.comments))
	copy(res, p.comments)
	return res
}

func (p *post) addLike(u social.User) {
	p.Lock()
	defer p.Unlock()
	p.likes = append(p.likes, u)
}

func (p *post) addComment(u social.User, text string) {
	p.Lock()
	defer p.Unlock()
	p.comments = append(p.comments, social.Comment{Author: u, Text: text})
}

// -----------------------------------------------------------------------------
// TextPost

// TextPost implements social.TextPost.
type TextPost struct {
	post
	text string
}

func newTextPost(owner social.User, content social.TextContent) *TextPost {
	return &TextPost{
		post: newPost(owner),
		text: content.Text,
	}
}

func (p *TextPost) Kind() social.PostKind {
	return social.Text
}

func (p *TextPost) GetText() string {
	return p.text
}

func (p *TextPost) Like(u social.User) {
	p.addLike(u)
	p.owner.Subscribers().NotifyLike(p, u)
}

func (p *TextPost) Comment(u social.User, text string) {
	p.addComment(u, text)
	p.owner.Subscribers().NotifyComment(p, u, text)
}

func (p *TextPost) String() string {
	return fmt.Sprintf("%s published a post:\n%s", p.owner.GetName(), p.text)
}

// -----------------------------------------------------------------------------
// ImagePost

// ImagePost implements social.ImagePost.
type ImagePost struct {
	post
	reference string
	displayer social.ImageDisplayer
}

func newImagePost(owner social.User, content social.ImageContent, displayer social.ImageDisplayer) *ImagePost {
	return &ImagePost{
		post:      newPost(owner),
		reference: content.Reference,
		displayer: displayer,
	}
}

func (p *ImagePost) Kind() social.PostKind {
	return social.Image
}

func (p *ImagePost) GetReference() string {
	return p.reference
}

// Like records the like. The owner is not notified of its own likes.
func (p *ImagePost) Like(u social.User) {
	p.addLike(u)
	if sameUser(u, p.owner) {
		return
	}
	p.owner.Subscribers().NotifyLike(p, u)
}

func (p *ImagePost) Comment(u social.User, text string) {
	p.addComment(u, text)
	p.owner.Subscribers().NotifyComment(p, u, text)
}

func (p *ImagePost) Display() error {
	err := p.displayer.Display(p.reference)
	if err != nil {
		return xerrors.Errorf("failed to display post %s: %w", p.id, err)
	}
	return nil
}

func (p *ImagePost) String() string {
	return fmt.Sprintf("%s posted a picture", p.owner.GetName())
}

// -----------------------------------------------------------------------------
// SalePost

// SalePost implements social.SalePost.
type SalePost struct {
	post
	product  string
	price    float64
	location string
	sold     bool
}

func newSalePost(owner social.User, content social.SaleContent) *SalePost {
	return &SalePost{
		post:     newPost(owner),
		product:  content.Product,
		price:    content.Price,
		location: content.Location,
	}
}

func (p *SalePost) Kind() social.PostKind {
	return social.Sale
}

func (p *SalePost) GetProduct() string {
	return p.product
}

func (p *SalePost) GetLocation() string {
	return p.location
}

func (p *SalePost) GetPrice() float64 {
	p.RLock()
	defer p.RUnlock()
	return p.price
}

func (p *SalePost) IsSold() bool {
	p.RLock()
	defer p.RUnlock()
	return p.sold
}

func (p *SalePost) Like(u social.User) {
	p.addLike(u)
	p.owner.Subscribers().NotifyLike(p, u)
}

func (p *SalePost) Comment(u social.User, text string) {
	p.addComment(u, text)
	p.owner.Subscribers().NotifyComment(p, u, text)
}

// ApplyDiscount multiplies the price by (1 - percent/100). The price has no
// lower bound.
func (p *SalePost) ApplyDiscount(percent float64, credential string) error {
	if !p.owner.CheckPassword(credential) {
		log.Warn().Str("post", p.id).Msg("discount declined")
		return xerrors.Errorf("failed to apply discount on %s: %w", p.id, social.ErrAuthorizationDeclined)
	}

	p.Lock()
	p.price *= 1 - percent/100
	price := p.price
	p.Unlock()

	log.Info().Str("post", p.id).Msgf("Discount on %s product! the new price is: %s",
		p.owner.GetName(), formatPrice(price))
	return nil
}

// MarkSold marks the product as sold. Marking a sold product again has no
// effect.
func (p *SalePost) MarkSold(credential string) error {
	if !p.owner.CheckPassword(credential) {
		log.Warn().Str("post", p.id).Msg("sale declined")
		return xerrors.Errorf("failed to mark %s as sold: %w", p.id, social.ErrAuthorizationDeclined)
	}

	p.Lock()
	p.sold = true
	p.Unlock()

	log.Info().Str("post", p.id).Msgf("%s's product is sold", p.owner.GetName())
	return nil
}

func (p *SalePost) String() string {
	p.RLock()
	defer p.RUnlock()

	status := "For sale!"
	if p.sold {
		status = "Sold!"
	}
	return fmt.Sprintf("%s posted a product for sale:\n%s %s, price: %s, pickup from: %s",
		p.owner.GetName(), status, p.product, formatPrice(p.price), p.location)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// Users are compared through their subscribers, so that a user and a wrapper
// embedding it are the same user.
func sameUser(a, b social.User) bool {
	return a.Subscribers() == b.Subscribers()
}
