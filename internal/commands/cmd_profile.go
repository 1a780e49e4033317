package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/remark/internal/remark"
	"github.com/colonyops/remark/pkg/iojson"
)

type ProfileCmd struct {
	flags *Flags
	app   *remark.App

	// flags
	userID     int
	jsonOutput bool
}

// NewProfileCmd creates a new profile command
func NewProfileCmd(flags *Flags, app *remark.App) *ProfileCmd {
	return &ProfileCmd{flags: flags, app: app}
}

// Register adds the profile command to the application
func (cmd *ProfileCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "profile",
		Usage:     "Show the feed owner's profile",
		UsageText: "remark profile [--user id] [--json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "user",
				Usage:       "user ID to fetch (defaults to api.user_id)",
				Destination: &cmd.userID,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ProfileCmd) run(ctx context.Context, c *cli.Command) error {
	id := cmd.app.Config.API.UserID
	if c.IsSet("user") {
		id = cmd.userID
	}

	user, err := cmd.app.Client.User(ctx, id)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.Write(user)
	}

	fmt.Printf("%s (@%s)\n", user.Name, user.Username)
	fmt.Printf("  email    %s\n", user.Email)
	fmt.Printf("  phone    %s\n", user.Phone)
	fmt.Printf("  website  %s\n", user.Website)
	fmt.Printf("  company  %s (%s)\n", user.Company.Name, user.Company.CatchPhrase)
	fmt.Printf("  address  %s %s, %s %s\n",
		user.Address.Street, user.Address.Suite, user.Address.City, user.Address.Zipcode)

	return nil
}
