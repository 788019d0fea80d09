package room

import "github.com/m04kA/SMC-StayCalendar/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
