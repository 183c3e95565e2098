package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// UnitOfWork держит пул соединений и фабрики репозиториев. Do выполняет переданную функцию
// внутри одной pgx транзакции, выдавая ей репозитории, привязанные к этой транзакции.
type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register регистрирует фабрику репозитория. Если имя уже занято, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. Если fn вернула ошибку, транзакция откатывается
// и ошибка возвращается как есть.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, pgx.TxOptions{})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	if fnErr := fn(ctx, NewTransaction(tx, u.repositories)); fnErr != nil {
		return fnErr
	}
	err = tx.Commit(ctx)
	return
}

// GetRepository возвращает репозиторий, работающий поверх пула (вне транзакции),
// или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name, приведенный к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return r, nil
}
