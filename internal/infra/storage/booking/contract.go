package booking

import (
	"github.com/m04kA/SMC-StayCalendar/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Поддерживает *sql.DB, *dbmetrics.DB и транзакции из контекста.
type DBExecutor = dbmetrics.DBExecutor
