package component

import (
	"fmt"
	"sort"
	"strings"
)

// Options are the per-model settings read from the configuration file.
type Options map[string]any

// Bool returns the boolean option key, or def when it is absent.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(b) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		}
	}
	return false, &OptionError{Key: key, Value: v, Want: "a boolean"}
}

// Float returns the numeric option key, or def when it is absent.
func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int:
		return float64(f), nil
	case int64:
		return float64(f), nil
	}
	return 0, &OptionError{Key: key, Value: v, Want: "a number"}
}

// String returns the string option key, or def when it is absent.
func (o Options) String(key, def string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &OptionError{Key: key, Value: v, Want: "a string"}
}

// OptionError is returned by a factory given an option it cannot use.
type OptionError struct {
	Key   string
	Value any
	Want  string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %q: got %v (%T), want %s", e.Key, e.Value, e.Value, e.Want)
}

// Factory builds a component from its options.
type Factory func(opts Options) (Component, error)

var factories = map[string]Factory{}

// Register makes a factory available under id. It panics on a duplicate id,
// since registration happens from package init functions.
func Register(id string, f Factory) {
	if _, dup := factories[id]; dup {
		panic("component: duplicate registration of " + id)
	}
	factories[id] = f
}

// New builds the component registered under id.
func New(id string, opts Options) (Component, error) {
	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("unknown model id %q", id)
	}
	c, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return c, nil
}

// IDs returns the registered ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
