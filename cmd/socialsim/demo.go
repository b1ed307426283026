package main

import (
	"fmt"
	"io"

	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/automation"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func demoAction(c *cli.Context) error {
	return runDemo(newNetwork(c), c.App.Writer)
}

// runDemo plays the reference scenario: three users follow each other, then
// publish, react and sell.
func runDemo(network social.Network, out io.Writer) error {
	credentials := [][2]string{{"Alice", "123456"}, {"Bob", "987654"}, {"Cecilia", "abcd1234"}}
	users := make([]social.User, len(credentials))
	for i, cred := range credentials {
		_, err := network.SignUp(cred[0], cred[1])
		if err != nil {
			return xerrors.Errorf("demo: %w", err)
		}
		users[i], err = network.LogIn(cred[0], cred[1])
		if err != nil {
			return xerrors.Errorf("demo: %w", err)
		}
	}
	alice, bob, cecilia := users[0], users[1], users[2]

	follows := [][2]social.User{{alice, bob}, {alice, cecilia}, {bob, alice}, {cecilia, alice}}
	for _, f := range follows {
		err := f[0].Follow(f[1])
		if err != nil {
			return xerrors.Errorf("demo: %w", err)
		}
	}

	text, err := alice.Publish(social.TextContent{Text: "Hello, this is my first post!"})
	if err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	text.Like(bob)
	text.Comment(cecilia, "Welcome!")

	p, err := cecilia.PublishTag("Sale", "Toy", "40.5", "Haifa")
	if err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	sale := p.(social.SalePost)
	sale.Comment(alice, "Is it still available?")

	// a wrong password is declined, the price doesn't change
	err = sale.ApplyDiscount(10, "wrong")
	if !xerrors.Is(err, social.ErrAuthorizationDeclined) {
		return xerrors.Errorf("demo: expected a declined discount, got %v", err)
	}
	err = sale.ApplyDiscount(10, "abcd1234")
	if err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	err = sale.MarkSold("abcd1234")
	if err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	fmt.Fprintln(out, sale.String())

	p, err = bob.Publish(social.ImageContent{Reference: "image1.jpg"})
	if err != nil {
		return xerrors.Errorf("demo: %w", err)
	}
	p.Like(alice)
	p.Like(bob)
	err = p.(social.ImagePost).Display()
	if err != nil {
		fmt.Fprintf(out, "failed to display image: %v\n", err)
	}

	printUsers(out, network)
	for _, u := range users {
		printNotifications(out, u)
	}

	for _, u := range users {
		network.LogOut(u.GetName())
	}
	return nil
}

func simulateAction(c *cli.Context) error {
	network := newNetwork(c)

	cluster, err := automation.NewCluster(network, c.Int("users"), c.Int64("seed"))
	if err != nil {
		return xerrors.Errorf("simulate: %w", err)
	}
	err = cluster.SetUpFollowings(c.Float64("follow-probability"))
	if err != nil {
		return xerrors.Errorf("simulate: %w", err)
	}
	for i := 0; i < c.Int("rounds"); i++ {
		err = cluster.PublishRound()
		if err != nil {
			return xerrors.Errorf("simulate: %w", err)
		}
	}

	stats := cluster.Stats()
	fmt.Fprintf(c.App.Writer, "users: %d, follows: %d, posts: %d, notifications: %d, likes: %d, comments: %d\n",
		stats.Users, stats.Follows, stats.Posts, stats.Notifications, stats.Likes, stats.Comments)
	return nil
}

func printUsers(out io.Writer, network social.Network) {
	for _, u := range network.GetUsers() {
		fmt.Fprintln(out, u.String())
	}
}

func printNotifications(out io.Writer, u social.User) {
	fmt.Fprintf(out, "%s's notifications:\n", u.GetName())
	for _, n := range u.GetNotifications() {
		fmt.Fprintln(out, n)
	}
}
