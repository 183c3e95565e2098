package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX общий интерфейс соединения: ему удовлетворяют и *pgxpool.Pool, и pgx.Tx.
// Репозитории работают только через него и не знают, выполняются они в транзакции или нет.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
