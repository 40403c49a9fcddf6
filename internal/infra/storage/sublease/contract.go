package sublease

import "github.com/m04kA/SMC-ClinicScheduling/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
