// Package assets persists uploaded binaries and yields retrievable
// URLs. The strategy (local disk or remote object storage) is chosen
// once at startup; callers only ever see the Store interface.
package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Store persists the uploaded binary and returns an absolute URL it
// can be fetched from. Either the binary is fully stored and a URL
// returned, or an error is returned with nothing stored.
type Store interface {
	Store(ctx context.Context, file io.Reader, originalName string) (string, error)
}

// uploadName prefixes the original filename with the current unix
// millisecond timestamp so repeated uploads of the same file never
// collide. Any directory components in the client-supplied name are
// stripped.
func uploadName(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
}
