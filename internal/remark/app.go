// Package remark wires the application's services together.
package remark

import (
	"github.com/colonyops/remark/internal/client"
	"github.com/colonyops/remark/internal/core/config"
	"github.com/colonyops/remark/internal/core/prefs"
	"github.com/colonyops/remark/internal/core/viewstate"
)

// App is the central entry point for all remark operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Client *client.Client
	Prefs  prefs.Store
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(c *client.Client, store prefs.Store, cfg *config.Config) *App {
	return &App{
		Client: c,
		Prefs:  store,
		Config: cfg,
	}
}

// NewEngine builds a view-state engine backed by the app's preference
// store, with the configured page-size default applied.
func (a *App) NewEngine() *viewstate.Engine {
	e := viewstate.NewEngine(a.Prefs)
	e.SetDefaultPageSize(a.Config.UI.PageSize)
	return e
}
