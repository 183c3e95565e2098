package repoargs

type RepositoryName string

const (
	AccountRepoName        RepositoryName = "account"
	TransactionRepoName    RepositoryName = "transaction"
	CurrencyConfigRepoName RepositoryName = "currency_config"
)
