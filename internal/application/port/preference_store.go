package port

import "context"

// PreferenceStore persists the theme preference as a plain string under a key.
//
// Get returns ("", nil) when the key is absent. Any returned error means the
// storage itself could not be read, which callers treat as "absent" after
// logging.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PreferenceWatcher reports values written to a key by other processes.
// Watch blocks until ctx is done. onChange receives "" when the key is cleared.
type PreferenceWatcher interface {
	Watch(ctx context.Context, key string, onChange func(value string)) error
}
