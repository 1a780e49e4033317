package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/remark/internal/core/comment"
	"github.com/colonyops/remark/internal/core/viewstate"
	"github.com/colonyops/remark/internal/remark"
	"github.com/colonyops/remark/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *remark.App

	// flags
	search     string
	sortKey    string
	sortOrder  string
	page       int
	pageSize   int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *remark.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the current page of comments",
		UsageText: "remark ls [--search q] [--sort key] [--order asc|desc] [--page n] [--page-size n] [--json]",
		Description: `Fetches the comment feed and prints the page the dashboard would show.

View flags apply the same mutations as the dashboard keys and are
remembered for the next run, so 'remark ls --search acme' leaves the
TUI filtered to acme as well.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "filter by case-insensitive substring of name, email, or body",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort key (postId, name, email)",
				Destination: &cmd.sortKey,
			},
			&cli.StringFlag{
				Name:        "order",
				Usage:       "sort order (asc, desc)",
				Value:       "asc",
				Destination: &cmd.sortOrder,
			},
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page number (clamped to the valid range)",
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Usage:       "rows per page (10, 25, 50, 100)",
				Destination: &cmd.pageSize,
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

// lsOutput is the --json payload.
type lsOutput struct {
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	Matches    int               `json:"matches"`
	Comments   []comment.Comment `json:"comments"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	comments, err := cmd.app.Client.Comments(ctx)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}

	engine := cmd.app.NewEngine()
	engine.SetComments(comments)
	engine.Hydrate()

	if err := cmd.applyFlags(engine, c); err != nil {
		return err
	}

	view := engine.Derive()
	state := engine.State()

	if cmd.jsonOutput {
		return iojson.Write(lsOutput{
			Page:       state.Page,
			TotalPages: view.TotalPages,
			PageSize:   state.PageSize,
			Total:      len(comments),
			Matches:    len(view.Filtered),
			Comments:   view.Paginated,
		})
	}

	if len(view.Paginated) == 0 {
		fmt.Fprintf(os.Stderr, "No comments match\n")
		return nil
	}

	bodyWidth := bodyColumnWidth()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOST\tNAME\tEMAIL\tBODY")
	for _, cm := range view.Paginated {
		body := strings.ReplaceAll(cm.Body, "\n", " ")
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			cm.ID, cm.PostID,
			ansi.Truncate(cm.Name, 32, "…"),
			cm.Email,
			ansi.Truncate(body, bodyWidth, "…"),
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	fmt.Printf("\npage %d/%d (%d of %d comments)\n",
		state.Page, view.TotalPages, len(view.Filtered), len(comments))

	return nil
}

// applyFlags replays explicitly-set view flags as engine mutations.
// Page size before page: changing the size resets to page one.
func (cmd *LsCmd) applyFlags(engine *viewstate.Engine, c *cli.Command) error {
	if c.IsSet("search") {
		engine.SetSearch(cmd.search)
	}

	if c.IsSet("sort") {
		key, ok := viewstate.ParseSortKey(cmd.sortKey)
		if !ok || key == viewstate.SortNone {
			return fmt.Errorf("unknown sort key %q (postId, name, email)", cmd.sortKey)
		}
		order, ok := viewstate.ParseSortOrder(cmd.sortOrder)
		if !ok || order == viewstate.OrderNone {
			return fmt.Errorf("unknown sort order %q (asc, desc)", cmd.sortOrder)
		}
		engine.ApplySort(key, order)
	}

	if c.IsSet("page-size") {
		n := cmd.pageSize
		if !viewstate.ValidPageSize(n) {
			return fmt.Errorf("page size must be one of %v, got %d", viewstate.PageSizes, n)
		}
		engine.SetPageSize(n)
	}

	if c.IsSet("page") {
		engine.SetPage(cmd.page)
	}

	return nil
}

// bodyColumnWidth leaves room for the fixed columns within the
// terminal width, falling back to a sane width when not a terminal.
func bodyColumnWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 120
	}
	return max(20, width-80)
}
