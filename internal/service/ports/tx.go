package ports

import "context"

// Transactor runs fn in one database transaction. Repositories called with the
// ctx passed to fn take part in it; a non-nil error from fn rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
