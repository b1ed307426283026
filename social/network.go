package social

// Network is the directory of every user of a social network.
type Network interface {
	// GetName returns the name of the platform.
	GetName() string

	// GetConfiguration returns the rules the network was created with.
	GetConfiguration() Configuration

	// SignUp creates a new user and adds it to the network.
	SignUp(username, password string) (User, error)

	// LogIn returns the user whose credentials match exactly.
	LogIn(username, password string) (User, error)

	// LogOut only reports the action.
	LogOut(username string)

	// GetUsers returns the users in sign up order.
	GetUsers() []User

	// GetUser returns the first user with the given username.
	GetUser(username string) (User, bool)
}
