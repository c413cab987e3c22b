// Package app implements the application layer for originctl.
package app

import (
	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
	"go.trai.ch/origin/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store        ports.OriginStore
	logger       ports.Logger
	configLoader ports.ConfigLoader
}

// New creates a new App instance.
func New(store ports.OriginStore, logger ports.Logger, loader ports.ConfigLoader) *App {
	return &App{
		store:        store,
		logger:       logger,
		configLoader: loader,
	}
}

// Settings loads the tool settings from cwd and applies the logging options.
func (a *App) Settings(cwd string) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(settings.JSONLogs)
	}
	return settings, nil
}

// edit loads the origin at path, applies mutate and saves the result when
// mutate reports a change. Nothing is written when mutate fails.
func (a *App) edit(path string, mutate func(o *origin.Origin) (bool, error)) (bool, error) {
	o, err := a.store.Load(path)
	if err != nil {
		return false, zerr.Wrap(err, "failed to load origin")
	}

	changed, err := mutate(o)
	if err != nil {
		return false, err
	}
	if !changed {
		a.logger.Info("origin unchanged", "path", path)
		return false, nil
	}

	written, err := a.store.Save(path, o)
	if err != nil {
		return false, zerr.Wrap(err, "failed to save origin")
	}
	a.logger.Info("origin updated", "path", path, "written", written)
	return true, nil
}

// always adapts a mutation that cannot fail and always counts as a change.
func always(mutate func(o *origin.Origin)) func(o *origin.Origin) (bool, error) {
	return func(o *origin.Origin) (bool, error) {
		mutate(o)
		return true, nil
	}
}
