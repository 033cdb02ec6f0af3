//go:build js && wasm

// Command console is the WebAssembly entry point of the monitoring console.
// It installs the router, runs the startup sequence and dispatches the
// location the page was opened with.
package main

import (
	"context"
	"log/slog"
	"os"
	"sync"
	_ "time/tzdata"

	console "github.com/pinpoint-apm/pinpoint-console"
)

// renderEnv is a minimal EventEnv: a lock plus a render request signal.
type renderEnv struct {
	sync.Mutex
	renders chan struct{}
}

func (e *renderEnv) UnlockOnly() { e.Unlock() }

func (e *renderEnv) UnlockRender() {
	e.Unlock()
	select {
	case e.renders <- struct{}{}:
	default:
	}
}

func main() {

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env := &renderEnv{renders: make(chan struct{}, 1)}

	router := console.New(env, console.DefaultRoutes())
	router.UseFragment(true)
	router.SetLogger(logger)
	router.SetDefaultHandler(console.RouteHandlerFunc(func(rm *console.RouteMatch) {
		logger.Info("route activated", "view", rm.View, "controller", rm.Controller, "path", rm.Path)
	}))

	store := console.NewStore()
	zone := console.NewZone()

	startup := &console.Startup{
		Router:      router,
		Store:       store,
		Fetcher:     console.NewHTTPConfigFetcher(console.DefaultConfigURL),
		Browser:     console.DefaultBrowser(),
		Preferences: console.StoragePreferences{Storage: console.DefaultStorage()},
		Zone:        zone,
		EventEnv:    env,
		Logger:      logger,
	}

	env.Lock()
	if err := startup.Run(context.Background()); err != nil {
		env.UnlockOnly()
		logger.Error("startup failed", "err", err)
		return
	}
	if err := router.Pull(); err != nil {
		logger.Warn("initial navigation failed", "err", err)
	}
	env.UnlockRender()

	for range env.renders {
		env.Lock()
		settings, err := store.Settings()
		if err != nil {
			logger.Warn("settings not decoded", "err", err)
		}
		logger.Debug("render requested", "location", router.Location(), "timezone", zone.Name(), "user", settings.UserName)
		env.UnlockOnly()
	}
}
