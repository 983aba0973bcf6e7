// Package commands contains the job board operations that modify state.
// Every command is validated by its constructor and executed by a handler
// inside a unit of work: begin, mutate through repositories, commit.
package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUoW manages transactions for job posting commands.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UserUoW manages transactions for account commands.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)

// inTx runs fn inside a transaction opened on tx. The deferred rollback is a
// no-op after a successful commit.
func inTx(ctx context.Context, tx TxManager, fn func() error) error {
	if err := tx.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
