package social

import "golang.org/x/crypto/bcrypt"

// Configuration of a social network.
type Configuration struct {
	// Name of the platform, only used for reporting.
	PlatformName string

	// When false, sign up accepts any password and duplicate usernames.
	ValidateSignUp bool

	// Inclusive bounds on the password length, checked when ValidateSignUp
	// is set.
	MinPasswordLength uint
	MaxPasswordLength uint

	// bcrypt cost used to hash passwords.
	PasswordCost int

	// Renders image posts. Defaults to a displayer that only logs the image
	// reference when nil.
	ImageDisplayer ImageDisplayer
}

// NewConfiguration returns the default configuration.
func NewConfiguration(platformName string) Configuration {
	return Configuration{
		PlatformName:      platformName,
		ValidateSignUp:    true,
		MinPasswordLength: 4,
		MaxPasswordLength: 8,
		PasswordCost:      bcrypt.DefaultCost,
	}
}

// ImageDisplayer renders the image behind an image reference.
type ImageDisplayer interface {
	Display(reference string) error
}
