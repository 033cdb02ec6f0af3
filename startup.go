package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cast"
)

const (
	// DefaultNoticeDelay is how long the unsupported browser notice waits
	// so it does not show before the first layout.
	DefaultNoticeDelay = 500 * time.Millisecond

	// UnsupportedBrowserNotice is the element id of the unsupported browser modal.
	UnsupportedBrowserNotice = "supported-browsers"

	// RedirectErrorCode in a configuration response means the page must
	// be abandoned for the URL in its "redirect" field.
	RedirectErrorCode = 302
)

// Browser is the part of the window the startup needs.
type Browser interface {
	CanvasSupported() bool // can a 2d drawing surface be created
	ShowNotice(id string)  // open a blocking modal
	Assign(url string)     // hard navigation away from the application
}

// Startup performs the one-time work done before the first view renders.
type Startup struct {
	Router      *Router
	Store       *Store
	Fetcher     ConfigFetcher
	Browser     Browser
	Preferences Preferences
	Zone        *Zone
	EventEnv    EventEnv
	NoticeDelay time.Duration // DefaultNoticeDelay if zero
	Logger      *slog.Logger

	afterFunc func(d time.Duration, f func())

	initOnce sync.Once
	runOnce  sync.Once
	done     chan struct{}
}

// Done is closed once the configuration response has been handled or the
// fetch failed.
func (s *Startup) Done() <-chan struct{} {
	s.init()
	return s.done
}

func (s *Startup) init() {
	s.initOnce.Do(func() {
		s.done = make(chan struct{})
		if s.Logger == nil {
			s.Logger = slog.Default()
		}
		if s.Browser == nil {
			s.Browser = DefaultBrowser()
		}
		if s.NoticeDelay == 0 {
			s.NoticeDelay = DefaultNoticeDelay
		}
		if s.afterFunc == nil {
			s.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
		}
	})
}

// Run performs the startup steps in order.  Only installing the navigator
// is waited for, the configuration fetch and the notice complete later.
// A failed install is returned but does not stop the remaining steps.
// Calls after the first do nothing.
func (s *Startup) Run(ctx context.Context) error {
	s.init()
	var err error
	s.runOnce.Do(func() {
		err = s.run(ctx)
	})
	return err
}

func (s *Startup) run(ctx context.Context) error {

	var installErr error
	if s.Router != nil {
		if err := s.Router.Start(); err != nil {
			installErr = fmt.Errorf("installing navigator: %w", err)
			s.Logger.Error("navigator not installed", "err", err)
		}
	}

	if s.Fetcher != nil {
		go s.fetchConfig(ctx)
	} else {
		close(s.done)
	}

	if !s.Browser.CanvasSupported() {
		s.afterFunc(s.NoticeDelay, func() {
			s.lock()
			s.Browser.ShowNotice(UnsupportedBrowserNotice)
			s.unlock(true)
		})
	}

	if s.Preferences != nil && s.Zone != nil {
		tz := s.Preferences.Timezone()
		if err := s.Zone.SetDefault(tz); err != nil {
			s.Logger.Warn("default timezone not applied", "timezone", tz, "err", err)
		}
	}

	return installErr
}

func (s *Startup) fetchConfig(ctx context.Context) {
	defer close(s.done)

	data, err := s.Fetcher.FetchConfig(ctx)
	if err != nil {
		// configuration is best effort, the console runs without it
		s.Logger.Debug("configuration fetch failed", "err", err)
		return
	}

	s.lock()
	merged := s.applyConfig(data)
	s.unlock(merged)
}

// applyConfig redirects or merges data into the store and reports whether it merged.
func (s *Startup) applyConfig(data map[string]interface{}) bool {

	if code, ok := data["errorCode"]; ok {
		if n, err := cast.ToIntE(code); err == nil && n == RedirectErrorCode {
			target := cast.ToString(data["redirect"])
			if target == "" {
				s.Logger.Warn("configuration redirect without target")
				return false
			}
			s.Logger.Info("configuration requires redirect", "url", target)
			s.Browser.Assign(target)
			return false
		}
	}

	if s.Store == nil {
		return false
	}
	if err := s.Store.Merge(data); err != nil {
		s.Logger.Warn("configuration not applied", "err", err)
		return false
	}
	return true
}

func (s *Startup) lock() {
	if s.EventEnv != nil {
		s.EventEnv.Lock()
	}
}

func (s *Startup) unlock(render bool) {
	if s.EventEnv == nil {
		return
	}
	if render {
		s.EventEnv.UnlockRender()
	} else {
		s.EventEnv.UnlockOnly()
	}
}
