package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent requests
// never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single order command.
//
// Begin is idempotent while a transaction is open. Rollback after a successful Commit
// is a no-op, which lets handlers defer it unconditionally.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the open transaction, or to the plain connection
	// when Begin has not been called.
	OrderRepository() OrderRepository
}
