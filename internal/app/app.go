package app

import (
	"context"
	"fmt"

	"os/signal"
	"syscall"

	"github.com/fsdevblog/guild-ledger/internal/config"
	"github.com/fsdevblog/guild-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/guild-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/guild-ledger/internal/service"
	"github.com/fsdevblog/guild-ledger/internal/transport/api"
	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting ledger with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	locks := keylock.New(a.Config.LockWaitTimeout)
	audit := service.NewAuditRecorder(a.Logger)

	services, sErr := service.Factory(unitOfWork, locks, audit)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		LedgerService:   services.LedgerService,
		QueryService:    services.QueryService,
		CurrencyService: services.CurrencyService,
		AdminJWTSecret:  []byte(a.Config.AdminJWTSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// account repo
	accountRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAccountRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.AccountRepoName), accountRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// transaction repo
	transactionRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransactionRepoName),
		transactionRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// currency config repo
	currencyConfigRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCurrencyConfigRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.CurrencyConfigRepoName),
		currencyConfigRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
