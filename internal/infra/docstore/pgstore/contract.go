package pgstore

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя запросов к БД.
// Поддерживает *sql.DB и обертки с метриками.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
