package repositories

import "context"

// TxFunc is the body of a unit of work. Every write it makes through repos
// becomes visible together when it returns nil, and none do otherwise.
type TxFunc func(ctx context.Context, repos RepositoryFacade) error

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn TxFunc) error
}
