package impl

import "github.com/minotor-team/socialsim/social"

var (
	_ social.Network    = (*Network)(nil)
	_ social.User       = (*UserNode)(nil)
	_ social.Observable = (*subscribers)(nil)
	_ social.TextPost   = (*TextPost)(nil)
	_ social.ImagePost  = (*ImagePost)(nil)
	_ social.SalePost   = (*SalePost)(nil)
)
