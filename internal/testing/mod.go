package testing

import (
	"github.com/minotor-team/socialsim/social"
	"golang.org/x/crypto/bcrypt"
)

type configTemplate struct {
	platformName      string
	validateSignUp    bool
	minPasswordLength uint
	maxPasswordLength uint
	passwordCost      int
	displayer         social.ImageDisplayer
}

func newConfigTemplate() configTemplate {
	defaults := social.NewConfiguration("N")
	ct := configTemplate{
		platformName:      defaults.PlatformName,
		validateSignUp:    defaults.ValidateSignUp,
		minPasswordLength: defaults.MinPasswordLength,
		maxPasswordLength: defaults.MaxPasswordLength,
	}
	// hashing with the default cost makes tests slow
	ct.passwordCost = bcrypt.MinCost
	return ct
}

// Option is the type of option when creating a test network.
type Option func(*configTemplate)

// WithPlatformName sets the name of the network.
func WithPlatformName(name string) Option {
	return func(ct *configTemplate) {
		ct.platformName = name
	}
}

// WithLegacySignUp disables the password length and unique username checks.
func WithLegacySignUp() Option {
	return func(ct *configTemplate) {
		ct.validateSignUp = false
	}
}

// WithPasswordLength sets the inclusive bounds on the password length.
func WithPasswordLength(lower, upper uint) Option {
	return func(ct *configTemplate) {
		ct.minPasswordLength = lower
		ct.maxPasswordLength = upper
	}
}

// WithImageDisplayer sets the displayer of image posts.
func WithImageDisplayer(d social.ImageDisplayer) Option {
	return func(ct *configTemplate) {
		ct.displayer = d
	}
}

func (ct configTemplate) configuration() social.Configuration {
	conf := social.NewConfiguration(ct.platformName)
	conf.ValidateSignUp = ct.validateSignUp
	conf.MinPasswordLength = ct.minPasswordLength
	conf.MaxPasswordLength = ct.maxPasswordLength
	conf.PasswordCost = ct.passwordCost
	conf.ImageDisplayer = ct.displayer
	return conf
}
