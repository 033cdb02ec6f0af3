package console

import (
	"fmt"
	"sync"
	"time"
)

// Zone is the default timezone used when the console formats dates.
// The zero value uses time.Local.
type Zone struct {
	mu  sync.RWMutex
	loc *time.Location
}

// NewZone returns a Zone set to time.Local.
func NewZone() *Zone {
	return &Zone{loc: time.Local}
}

// SetDefault loads the IANA timezone name and makes it the default.
// An empty name leaves the current default in place.
func (z *Zone) SetDefault(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", name, err)
	}
	z.mu.Lock()
	z.loc = loc
	z.mu.Unlock()
	return nil
}

// Location returns the default location.
func (z *Zone) Location() *time.Location {
	z.mu.RLock()
	defer z.mu.RUnlock()
	if z.loc == nil {
		return time.Local
	}
	return z.loc
}

// Name returns the name of the default location.
func (z *Zone) Name() string { return z.Location().String() }

// In returns t in the default location.
func (z *Zone) In(t time.Time) time.Time { return t.In(z.Location()) }

// Format formats t in the default location.
func (z *Zone) Format(t time.Time, layout string) string {
	return z.In(t).Format(layout)
}
