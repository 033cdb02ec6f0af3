package console

import (
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// Store holds the runtime configuration fetched at startup.  It starts
// empty and is only ever merged into, never replaced.  Readers must treat
// an absent key as "not configured yet".
type Store struct {
	mu sync.RWMutex
	m  map[string]interface{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{m: make(map[string]interface{})}
}

// Merge assigns every top-level key of src into the store, replacing the
// previous value of that key outright and keeping all other keys.  Nested
// objects are not merged, a newer value wins as a whole.
func (s *Store) Merge(src map[string]interface{}) error {
	if len(src) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m == nil {
		s.m = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		s.m[k] = v
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// Has reports whether key has been configured.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// GetString returns the value of key converted to a string, "" if absent.
func (s *Store) GetString(key string) string {
	v, _ := s.Get(key)
	return cast.ToString(v)
}

// GetBool returns the value of key converted to a bool, false if absent.
func (s *Store) GetBool(key string) bool {
	v, _ := s.Get(key)
	return cast.ToBool(v)
}

// GetInt returns the value of key converted to an int, 0 if absent.
func (s *Store) GetInt(key string) int {
	v, _ := s.Get(key)
	return cast.ToInt(v)
}

// Keys returns the configured keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]string, 0, len(s.m))
	for k := range s.m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Len returns the number of configured keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Snapshot returns a shallow copy of the store contents.
func (s *Store) Snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make(map[string]interface{}, len(s.m))
	for k, v := range s.m {
		ret[k] = v
	}
	return ret
}

// Decode decodes the store contents into out, a pointer to a struct
// using `mapstructure` tags.  Values are converted weakly so "true" and
// 1 both decode into a bool.
func (s *Store) Decode(out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(s.Snapshot())
}
