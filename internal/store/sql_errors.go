package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed statement may succeed when
// executed again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// String returns the label used in log fields.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// postgresClassifier treats connection exceptions (class 08), transaction
// rollbacks (class 40, serialization failures and deadlocks included) and
// "cannot connect now" as transient.
type postgresClassifier struct{}

func (postgresClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// sqliteClassifier treats a busy or locked database as transient. Both
// happen when another process holds the write lock on the file.
type sqliteClassifier struct{}

func (sqliteClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return NonRetryable
	}

	if liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked {
		return Retryable
	}
	return NonRetryable
}
