package upload

import (
	"context"
	"io"
)

// Store persists uploaded photo files and returns the path recorded on the
// photo row. Implementations must generate collision-free names; the caller
// only supplies the original filename for extension/readability.
type Store interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
