package booking

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов
// Реализуется *sql.DB; каждая операция - одиночная атомарная запись,
// поэтому транзакции на этом уровне не нужны
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
