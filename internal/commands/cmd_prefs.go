package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/remark/internal/remark"
	"github.com/colonyops/remark/pkg/iojson"
)

// prefKeys are the persisted view-state fields, in display order.
var prefKeys = []string{"search", "page", "pageSize", "sortKey", "sortOrder"}

type PrefsCmd struct {
	flags *Flags
	app   *remark.App

	// flags
	jsonOutput bool
}

// NewPrefsCmd creates a new prefs command
func NewPrefsCmd(flags *Flags, app *remark.App) *PrefsCmd {
	return &PrefsCmd{flags: flags, app: app}
}

// Register adds the prefs command to the application
func (cmd *PrefsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prefs",
		Usage:     "Show saved view preferences",
		UsageText: "remark prefs [--json] | remark prefs reset",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:   "reset",
				Usage:  "Restore default view preferences",
				Action: cmd.reset,
			},
		},
	})

	return app
}

func (cmd *PrefsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.jsonOutput {
		out := make(map[string]string, len(prefKeys))
		for _, k := range prefKeys {
			if v, ok := cmd.app.Prefs.Get(k); ok {
				out[k] = v
			}
		}
		return iojson.Write(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, k := range prefKeys {
		v, ok := cmd.app.Prefs.Get(k)
		if !ok {
			v = "(default)"
		} else if v == "" {
			v = `""`
		}
		fmt.Fprintf(w, "%s\t%s\n", k, v)
	}
	return w.Flush()
}

func (cmd *PrefsCmd) reset(ctx context.Context, c *cli.Command) error {
	engine := cmd.app.NewEngine()
	engine.Reset()
	fmt.Println("view preferences reset")
	return nil
}
