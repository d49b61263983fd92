package output

import (
	"context"
)

// Output defines the interface for interpretation result destinations.
type Output interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}
