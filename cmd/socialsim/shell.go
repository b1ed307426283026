package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

const (
	actionSignUp        = "Sign up"
	actionLogIn         = "Log in"
	actionFollow        = "Follow"
	actionUnfollow      = "Unfollow"
	actionPublish       = "Publish"
	actionLike          = "Like"
	actionComment       = "Comment"
	actionDiscount      = "Discount"
	actionMarkSold      = "Mark sold"
	actionNotifications = "Notifications"
	actionUsers         = "Users"
	actionLogOut        = "Log out"
	actionQuit          = "Quit"
)

// shell is an interactive session on a network. At most one user is logged
// in at a time.
type shell struct {
	network social.Network
	out     io.Writer
	current social.User
	// users whose events are printed while they are logged in
	watched map[social.User]bool
}

func shellAction(c *cli.Context) error {
	s := shell{
		network: newNetwork(c),
		out:     c.App.Writer,
		watched: make(map[social.User]bool),
	}
	return s.run()
}

func (s *shell) run() error {
	for {
		var action string
		err := survey.AskOne(&survey.Select{
			Message: s.prompt(),
			Options: s.actions(),
		}, &action)
		if xerrors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("shell: %w", err)
		}

		if action == actionQuit {
			return nil
		}

		err = s.execute(action)
		if xerrors.Is(err, terminal.InterruptErr) {
			continue
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *shell) prompt() string {
	if s.current == nil {
		return fmt.Sprintf("%s - not logged in", s.network.GetName())
	}
	return fmt.Sprintf("%s - %s", s.network.GetName(), s.current.GetName())
}

func (s *shell) actions() []string {
	if s.current == nil {
		return []string{actionSignUp, actionLogIn, actionUsers, actionQuit}
	}
	return []string{actionFollow, actionUnfollow, actionPublish, actionLike, actionComment,
		actionDiscount, actionMarkSold, actionNotifications, actionUsers, actionLogOut, actionQuit}
}

func (s *shell) execute(action string) error {
	switch action {
	case actionSignUp:
		return s.signUp()
	case actionLogIn:
		return s.logIn()
	case actionFollow:
		return s.follow()
	case actionUnfollow:
		return s.unfollow()
	case actionPublish:
		return s.publish()
	case actionLike, actionComment:
		return s.react(action)
	case actionDiscount, actionMarkSold:
		return s.manageSale(action)
	case actionNotifications:
		printNotifications(s.out, s.current)
	case actionUsers:
		printUsers(s.out, s.network)
	case actionLogOut:
		s.network.LogOut(s.current.GetName())
		s.current = nil
	}
	return nil
}

func (s *shell) askCredentials() (string, string, error) {
	answers := struct {
		Username string
		Password string
	}{}
	err := survey.Ask([]*survey.Question{
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username:"},
			Validate: survey.Required,
		},
		{
			Name:   "password",
			Prompt: &survey.Password{Message: "Password:"},
		},
	}, &answers)
	return answers.Username, answers.Password, err
}

func (s *shell) signUp() error {
	username, password, err := s.askCredentials()
	if err != nil {
		return err
	}
	_, err = s.network.SignUp(username, password)
	return err
}

func (s *shell) logIn() error {
	username, password, err := s.askCredentials()
	if err != nil {
		return err
	}
	u, err := s.network.LogIn(username, password)
	if err != nil {
		return err
	}

	s.current = u
	if s.watched[u] {
		return nil
	}
	s.watched[u] = true
	u.RegisterNotify(func(e types.Event) error {
		if s.current == u {
			fmt.Fprintf(s.out, "* %s\n", e.String())
		}
		return nil
	})
	return nil
}

// selectUser asks for one of the users matching the filter.
func (s *shell) selectUser(message string, filter func(social.User) bool) (social.User, error) {
	candidates := make(map[string]social.User)
	options := []string{}
	for i, u := range s.network.GetUsers() {
		if !filter(u) {
			continue
		}
		label := fmt.Sprintf("%d. %s", i+1, u.GetName())
		candidates[label] = u
		options = append(options, label)
	}
	if len(options) == 0 {
		return nil, xerrors.Errorf("no user to select")
	}

	var label string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &label)
	if err != nil {
		return nil, err
	}
	return candidates[label], nil
}

func (s *shell) follow() error {
	u, err := s.selectUser("Follow:", func(u social.User) bool {
		return u != s.current && !s.current.IsFollowing(u)
	})
	if err != nil {
		return err
	}
	return s.current.Follow(u)
}

func (s *shell) unfollow() error {
	u, err := s.selectUser("Unfollow:", s.current.IsFollowing)
	if err != nil {
		return err
	}
	return s.current.Unfollow(u)
}

func (s *shell) publish() error {
	var tag string
	err := survey.AskOne(&survey.Select{
		Message: "Kind of post:",
		Options: []string{social.Text.String(), social.Image.String(), social.Sale.String()},
	}, &tag)
	if err != nil {
		return err
	}

	var args []string
	switch tag {
	case social.Sale.String():
		answers := struct {
			Product  string
			Price    string
			Location string
		}{}
		err = survey.Ask([]*survey.Question{
			{Name: "product", Prompt: &survey.Input{Message: "Product:"}, Validate: survey.Required},
			{Name: "price", Prompt: &survey.Input{Message: "Price:"}, Validate: validatePrice},
			{Name: "location", Prompt: &survey.Input{Message: "Pickup location:"}, Validate: survey.Required},
		}, &answers)
		args = []string{answers.Product, answers.Price, answers.Location}
	case social.Image.String():
		var reference string
		err = survey.AskOne(&survey.Input{Message: "Image file:"}, &reference, survey.WithValidator(survey.Required))
		args = []string{reference}
	default:
		var text string
		err = survey.AskOne(&survey.Multiline{Message: "Text:"}, &text)
		args = []string{text}
	}
	if err != nil {
		return err
	}

	p, err := s.current.PublishTag(tag, args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, p.String())
	return nil
}

func validatePrice(answer interface{}) error {
	str, ok := answer.(string)
	if !ok {
		return xerrors.Errorf("price must be a string")
	}
	_, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return xerrors.Errorf("invalid price %q", str)
	}
	return nil
}

// selectPost asks for one of the posts of the feed or of the current user
// matching the filter.
func (s *shell) selectPost(message string, filter func(social.Post) bool) (social.Post, error) {
	candidates := make(map[string]social.Post)
	options := []string{}
	posts := append(s.current.GetPosts(), s.current.GetFeed()...)
	for i, p := range posts {
		if !filter(p) {
			continue
		}
		firstLine := strings.SplitN(p.String(), "\n", 2)[0]
		label := fmt.Sprintf("%d. [%s] %s", i+1, p.Kind(), firstLine)
		candidates[label] = p
		options = append(options, label)
	}
	if len(options) == 0 {
		return nil, xerrors.Errorf("no post to select")
	}

	var label string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &label)
	if err != nil {
		return nil, err
	}
	return candidates[label], nil
}

func (s *shell) react(action string) error {
	p, err := s.selectPost(action+":", func(social.Post) bool { return true })
	if err != nil {
		return err
	}

	if action == actionLike {
		p.Like(s.current)
		return nil
	}

	var text string
	err = survey.AskOne(&survey.Input{Message: "Comment:"}, &text, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}
	p.Comment(s.current, text)
	return nil
}

// manageSale applies a discount or marks a sale as sold. The password is asked
// again: only the owner may change its listing.
func (s *shell) manageSale(action string) error {
	p, err := s.selectPost(action+":", func(p social.Post) bool {
		return p.Kind() == social.Sale
	})
	if err != nil {
		return err
	}
	sale := p.(social.SalePost)

	var password string
	err = survey.AskOne(&survey.Password{Message: "Password:"}, &password)
	if err != nil {
		return err
	}

	if action == actionMarkSold {
		err = sale.MarkSold(password)
	} else {
		var percent string
		err = survey.AskOne(&survey.Input{Message: "Discount (%):"}, &percent, survey.WithValidator(validatePrice))
		if err != nil {
			return err
		}
		var value float64
		value, err = parseDiscount(percent)
		if err != nil {
			return err
		}
		err = sale.ApplyDiscount(value, password)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, sale.String())
	return nil
}

func parseDiscount(percent string) (float64, error) {
	value, err := strconv.ParseFloat(percent, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid discount %q: %w", percent, err)
	}
	return value, nil
}
