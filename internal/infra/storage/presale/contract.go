package presale

import "github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
