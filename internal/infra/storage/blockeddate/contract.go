package blockeddate

import "github.com/m04kA/BRB-BookingService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *sql.Tx (через txmanager)
type DBExecutor = txmanager.Executor
