package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

const transactionColumns = `id, guild_id, from_account_id, to_account_id, amount, transaction_type, reason, created_by, created_at`

// TransactionRepository append-only хранилище транзакций. UPDATE/DELETE по таблице
// не существует в принципе: история никогда не переписывается.
type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create дописывает транзакцию. ID и created_at выставляет база на коммите.
func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO transactions (guild_id, from_account_id, to_account_id, amount, transaction_type, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		args.GuildID, args.FromAccountID, args.ToAccountID, args.Amount, string(args.Type), args.Reason, args.CreatedBy,
	)
	trans, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction in guild %d", args.Type, args.GuildID)
	}
	return trans, nil
}

// History возвращает транзакции, затрагивающие счет (как источник или получатель),
// свежие первыми; при равенстве created_at выше та, у которой больше id.
func (r *TransactionRepository) History(
	ctx context.Context,
	q repoargs.HistoryQuery,
) ([]domain.Transaction, error) {
	safeLimit, limitErr := safeConvertUintToInt32(q.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE (from_account_id = $1 OR to_account_id = $1)`
	queryArgs := []any{q.AccountID}

	if q.Type != nil {
		queryArgs = append(queryArgs, string(*q.Type))
		query += ` AND transaction_type = $2`
	}
	queryArgs = append(queryArgs, safeLimit)
	query += ` ORDER BY created_at DESC, id DESC LIMIT ` + placeholder(len(queryArgs))

	return r.queryTransactions(ctx, query, queryArgs, "getting history of account `%s`", q.AccountID)
}

// GuildAudit возвращает транзакции гильдии для админского аудита. Фильтр UserID сужает выборку
// до транзакций, где счет участвует с любой стороны.
func (r *TransactionRepository) GuildAudit(
	ctx context.Context,
	q repoargs.AuditQuery,
) ([]domain.Transaction, error) {
	safeLimit, limitErr := safeConvertUintToInt32(q.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE guild_id = $1`
	queryArgs := []any{q.GuildID}

	if q.Type != nil {
		queryArgs = append(queryArgs, string(*q.Type))
		query += ` AND transaction_type = ` + placeholder(len(queryArgs))
	}
	if q.UserID != nil {
		queryArgs = append(queryArgs, *q.UserID)
		p := placeholder(len(queryArgs))
		query += ` AND (from_account_id = ` + p + ` OR to_account_id = ` + p + `)`
	}
	queryArgs = append(queryArgs, safeLimit)
	query += ` ORDER BY created_at DESC, id DESC LIMIT ` + placeholder(len(queryArgs))

	return r.queryTransactions(ctx, query, queryArgs, "getting audit log of guild %d", q.GuildID)
}

// OutgoingTransferSumSince возвращает сумму исходящих переводов счета начиная с since.
// Используется для проверки дневного лимита; вызывается внутри той же транзакции, что и сам перевод.
func (r *TransactionRepository) OutgoingTransferSumSince(
	ctx context.Context,
	accountID string,
	since time.Time,
) (decimal.Decimal, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE(sum(amount), 0) FROM transactions
		WHERE from_account_id = $1 AND transaction_type = $2 AND created_at >= $3`,
		accountID, string(domain.TransactionTypeTransfer), since,
	)
	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing outgoing transfers of account `%s`", accountID)
	}
	return sum, nil
}

// SignedSum возвращает знаковую сумму всех транзакций счета: входящие с плюсом,
// исходящие с минусом. У консистентного счета она равна балансу.
func (r *TransactionRepository) SignedSum(ctx context.Context, accountID string) (decimal.Decimal, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE(sum(CASE WHEN to_account_id = $1 THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE from_account_id = $1 OR to_account_id = $1`,
		accountID,
	)
	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "calculating signed sum of account `%s`", accountID)
	}
	return sum, nil
}

// CountByType возвращает количество и оборот транзакций гильдии в разрезе типа.
func (r *TransactionRepository) CountByType(
	ctx context.Context,
	guildID int64,
) ([]repoargs.TypeAggregation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transaction_type, count(*), COALESCE(sum(amount), 0)
		FROM transactions WHERE guild_id = $1
		GROUP BY transaction_type`,
		guildID,
	)
	if err != nil {
		return nil, convertErr(err, "counting transactions of guild %d", guildID)
	}
	defer rows.Close()

	var aggregations []repoargs.TypeAggregation
	for rows.Next() {
		var agg repoargs.TypeAggregation
		var transactionType string
		if scanErr := rows.Scan(&transactionType, &agg.Count, &agg.Volume); scanErr != nil {
			return nil, convertErr(scanErr, "counting transactions of guild %d", guildID)
		}
		agg.Type = domain.TransactionType(transactionType)
		aggregations = append(aggregations, agg)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "counting transactions of guild %d", guildID)
	}
	return aggregations, nil
}

func (r *TransactionRepository) queryTransactions(
	ctx context.Context,
	query string,
	queryArgs []any,
	msgFormat string,
	msgArgs ...any,
) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, msgFormat, msgArgs...)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		trans, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, msgFormat, msgArgs...)
		}
		transactions = append(transactions, *trans)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, msgFormat, msgArgs...)
	}
	return transactions, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var trans domain.Transaction
	var transactionType string
	err := row.Scan(
		&trans.ID,
		&trans.GuildID,
		&trans.FromAccountID,
		&trans.ToAccountID,
		&trans.Amount,
		&transactionType,
		&trans.Reason,
		&trans.CreatedBy,
		&trans.CreatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	trans.Type = domain.TransactionType(transactionType)
	return &trans, nil
}

// placeholder возвращает позиционный плейсхолдер $n.
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
