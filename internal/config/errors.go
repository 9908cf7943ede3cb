package config

import "fmt"

// LoadError reports a configuration file that could not be read at all.
// It is the only fatal error of a run.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config file '%s' %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("config file '%s': %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EntryError reports a configuration entry that is skipped.
type EntryError struct {
	Index  int    // 1-based entry position
	Key    string // offending key, empty when the whole entry is wrong
	Reason string
}

func (e *EntryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration entry #%d: %s: %s", e.Index, e.Key, e.Reason)
	}
	return fmt.Sprintf("configuration entry #%d: %s", e.Index, e.Reason)
}
