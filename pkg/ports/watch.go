package ports

import "context"

// Watchable is implemented by loaders that can report source changes.
// Each value on the channel identifies the changed document; the channel
// closes when ctx is done.
type Watchable interface {
	Watch(ctx context.Context) (<-chan string, error)
}
