package impl

import (
	"sync"
	"unicode/utf8"

	"github.com/minotor-team/socialsim/datastructures"
	"github.com/minotor-team/socialsim/datastructures/concurrent"
	"github.com/minotor-team/socialsim/social"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// NewNetwork creates a social network. There is no global instance: a run
// creates its network once and passes it around.
func NewNetwork(conf social.Configuration) *Network {
	if conf.ImageDisplayer == nil {
		conf.ImageDisplayer = logImageDisplayer{}
	}

	n := &Network{
		conf:    conf,
		factory: NewPostFactory(conf.ImageDisplayer),
		users:   concurrent.NewSlice[social.User](),
	}

	log.Info().Msgf("The social network %s has been created", conf.PlatformName)
	return n
}

// Network is the directory of users.
//
// - implements social.Network
type Network struct {
	conf    social.Configuration
	factory *PostFactory

	// signUpLock makes the uniqueness check and the insertion atomic.
	signUpLock sync.Mutex
	users      concurrent.Slice[social.User]
}

func (n *Network) GetName() string {
	return n.conf.PlatformName
}

// GetConfiguration implements social.Network
func (n *Network) GetConfiguration() social.Configuration {
	return n.conf
}

// SignUp creates a user. When the configuration validates sign up, it returns
// ErrInvalidPasswordLength or ErrDuplicateUsername and adds no user.
func (n *Network) SignUp(username, password string) (social.User, error) {
	if n.conf.ValidateSignUp {
		length := uint(utf8.RuneCountInString(password))
		if length < n.conf.MinPasswordLength || length > n.conf.MaxPasswordLength {
			log.Warn().Str("user", username).Msg("sign up rejected: invalid password length")
			return nil, xerrors.Errorf("password of %s must have between %d and %d characters: %w",
				username, n.conf.MinPasswordLength, n.conf.MaxPasswordLength, social.ErrInvalidPasswordLength)
		}
	}

	cred, err := newCredential(password, n.conf.PasswordCost)
	if err != nil {
		return nil, xerrors.Errorf("failed to sign up %s: %w", username, err)
	}

	n.signUpLock.Lock()
	defer n.signUpLock.Unlock()

	if n.conf.ValidateSignUp {
		_, taken := n.GetUser(username)
		if taken {
			log.Warn().Str("user", username).Msg("sign up rejected: username taken")
			return nil, xerrors.Errorf("failed to sign up %s: %w", username, social.ErrDuplicateUsername)
		}
	}

	u := newUserNode(username, cred, n.factory)
	n.users.Append(u)

	log.Info().Str("id", u.GetID()).Msgf("%s signed up to %s", username, n.conf.PlatformName)
	return u, nil
}

func (n *Network) LogIn(username, password string) (social.User, error) {
	candidates := datastructures.Filter(n.users.Elements(), func(u social.User) bool {
		return u.GetName() == username
	})

	for _, u := range candidates {
		if u.CheckPassword(password) {
			log.Info().Msgf("%s has logged in", username)
			return u, nil
		}
	}

	log.Warn().Str("user", username).Msg("Invalid username or password")
	return nil, xerrors.Errorf("failed to log in %s: %w", username, social.ErrInvalidCredentials)
}

func (n *Network) LogOut(username string) {
	log.Info().Msgf("%s has logged out", username)
}

func (n *Network) GetUsers() []social.User {
	return n.users.Elements()
}

func (n *Network) GetUser(username string) (social.User, bool) {
	return n.users.Find(func(u social.User) bool {
		return u.GetName() == username
	})
}
