package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/guild-ledger/internal/domain"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

const accountColumns = `id, guild_id, account_type, owner_ref, balance, active, frozen, created_at, updated_at`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create создает счет. При конфликте по первичному ключу или по тройке
// (guild_id, account_type, owner_ref) возвращает domain.ErrDuplicateKey.
func (r *AccountRepository) Create(ctx context.Context, args repoargs.AccountCreate) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (id, guild_id, account_type, owner_ref, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+accountColumns,
		args.ID, args.GuildID, string(args.AccountType), args.OwnerRef, args.Balance,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account `%s`", args.ID)
	}
	return account, nil
}

// Get возвращает счет по ID или domain.ErrRecordNotFound.
func (r *AccountRepository) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "getting account `%s`", accountID)
	}
	return account, nil
}

// GetForUpdate читает счет с row-level блокировкой. Вызывается только внутри транзакции:
// страховка на случай, если кто-то мутирует баланс в обход keylock (например, вторая нода).
func (r *AccountRepository) GetForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, accountID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account `%s`", accountID)
	}
	return account, nil
}

// FindByOwner ищет счет по тройке (guild_id, account_type, owner_ref).
func (r *AccountRepository) FindByOwner(
	ctx context.Context,
	guildID int64,
	accountType domain.AccountType,
	ownerRef string,
) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE guild_id = $1 AND account_type = $2 AND owner_ref = $3`,
		guildID, string(accountType), ownerRef,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by owner `%s` in guild %d", ownerRef, guildID)
	}
	return account, nil
}

// ListByGuild возвращает счета гильдии, отсортированные по дате создания по возрастанию
// (id в качестве стабильного tie-break).
func (r *AccountRepository) ListByGuild(
	ctx context.Context,
	guildID int64,
	filter repoargs.AccountFilter,
) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE guild_id = $1`
	queryArgs := []any{guildID}

	if filter.AccountType != nil {
		queryArgs = append(queryArgs, string(*filter.AccountType))
		query += ` AND account_type = $2`
	}
	if filter.ActiveOnly {
		query += ` AND active`
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing accounts of guild %d", guildID)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing accounts of guild %d", guildID)
		}
		accounts = append(accounts, *account)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing accounts of guild %d", guildID)
	}
	return accounts, nil
}

// AdjustBalance атомарно смещает баланс счета на delta (отрицательная delta - списание)
// и возвращает обновленный счет.
func (r *AccountRepository) AdjustBalance(
	ctx context.Context,
	accountID string,
	delta decimal.Decimal,
) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE accounts SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		accountID, delta,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "adjusting balance of account `%s`", accountID)
	}
	return account, nil
}

func (r *AccountRepository) SetActive(ctx context.Context, accountID string, active bool) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE accounts SET active = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		accountID, active,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "setting active=%t on account `%s`", active, accountID)
	}
	return account, nil
}

func (r *AccountRepository) SetFrozen(ctx context.Context, accountID string, frozen bool) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE accounts SET frozen = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		accountID, frozen,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "setting frozen=%t on account `%s`", frozen, accountID)
	}
	return account, nil
}

// GuildStats возвращает агрегацию по счетам гильдии для экономической статистики.
func (r *AccountRepository) GuildStats(ctx context.Context, guildID int64) (*repoargs.GuildAccountStats, error) {
	row := r.db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE active), COALESCE(sum(balance), 0)
		FROM accounts WHERE guild_id = $1`,
		guildID,
	)
	var stats repoargs.GuildAccountStats
	if err := row.Scan(&stats.TotalAccounts, &stats.ActiveAccounts, &stats.TotalBalance); err != nil {
		return nil, convertErr(err, "aggregating accounts of guild %d", guildID)
	}
	return &stats, nil
}

// TopHolders возвращает limit самых богатых счетов гильдии по убыванию баланса.
func (r *AccountRepository) TopHolders(
	ctx context.Context,
	guildID int64,
	limit uint,
) ([]repoargs.TopHolder, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, account_type, owner_ref, balance FROM accounts
		WHERE guild_id = $1 AND active
		ORDER BY balance DESC, id ASC
		LIMIT $2`,
		guildID, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting top holders of guild %d", guildID)
	}
	defer rows.Close()

	var holders []repoargs.TopHolder
	for rows.Next() {
		var h repoargs.TopHolder
		var accountType string
		if scanErr := rows.Scan(&h.AccountID, &accountType, &h.OwnerRef, &h.Balance); scanErr != nil {
			return nil, convertErr(scanErr, "getting top holders of guild %d", guildID)
		}
		h.AccountType = domain.AccountType(accountType)
		holders = append(holders, h)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting top holders of guild %d", guildID)
	}
	return holders, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	var accountType string
	err := row.Scan(
		&account.ID,
		&account.GuildID,
		&accountType,
		&account.OwnerRef,
		&account.Balance,
		&account.Active,
		&account.Frozen,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	account.AccountType = domain.AccountType(accountType)
	return &account, nil
}
