package repository

import "context"

type TxDAO interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Transactor scopes a unit of work to one database transaction. Repositories
// called with the ctx handed to fn take part in it.
type Transactor struct {
	dao TxDAO
}

func NewTransactor(dao TxDAO) *Transactor {
	return &Transactor{
		dao: dao,
	}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.dao.RunInTx(ctx, fn)
}
