package console

// Preferences is the user preference service the startup reads from.
type Preferences interface {
	Timezone() string
}

// ItemReader reads string items from a key/value storage such as window.localStorage.
type ItemReader interface {
	Item(key string) (string, bool)
}

// TimezoneKey is the storage key of the timezone preference.
const TimezoneKey = "timezone"

// StoragePreferences reads preferences from an ItemReader.
type StoragePreferences struct {
	Storage         ItemReader
	DefaultTimezone string // used when nothing is stored
}

// Timezone implements Preferences.
func (p StoragePreferences) Timezone() string {
	if p.Storage != nil {
		if v, ok := p.Storage.Item(TimezoneKey); ok && v != "" {
			return v
		}
	}
	return p.DefaultTimezone
}

// MapStorage is an ItemReader over a map.
type MapStorage map[string]string

// Item implements ItemReader.
func (m MapStorage) Item(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
