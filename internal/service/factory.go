package service

import (
	"fmt"

	"github.com/fsdevblog/guild-ledger/pkg/keylock"
	"github.com/fsdevblog/guild-ledger/pkg/uow"
)

type AppServices struct {
	LedgerService   *LedgerService
	QueryService    *QueryService
	CurrencyService *CurrencyService
}

func Factory(unitOfWork uow.UOW, locks *keylock.Locker, audit *AuditRecorder) (*AppServices, error) {
	queryService, queryErr := NewQueryService(unitOfWork)
	if queryErr != nil {
		return nil, fmt.Errorf("service factory: %s", queryErr.Error())
	}

	currencyService, currencyErr := NewCurrencyService(unitOfWork, audit)
	if currencyErr != nil {
		return nil, fmt.Errorf("service factory: %s", currencyErr.Error())
	}

	return &AppServices{
		LedgerService:   NewLedgerService(unitOfWork, locks, audit),
		QueryService:    queryService,
		CurrencyService: currencyService,
	}, nil
}
