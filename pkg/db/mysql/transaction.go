package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	apperrors "hotelbooking/pkg/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	errDuplicateEntry  = 1062
	errLockDeadlock    = 1213
	errLockWaitTimeout = 1205
)

type TransactionFunc func(tx *gorm.DB) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type gormTransactionManager struct {
	db         *gorm.DB
	maxRetries int
}

// NewTransactionManager runs fn in a READ COMMITTED transaction and retries it when MySQL
// picks it as a deadlock victim, mirroring the retry the Mongo driver performs on write conflicts.
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &gormTransactionManager{db: db, maxRetries: 3}
}

func (m *gormTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		err = m.db.WithContext(ctx).Transaction(fn, opts)
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			break
		}
	}

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errLockDeadlock || myErr.Number == errLockWaitTimeout
	}
	return false
}

// IsDuplicateKey reports whether err is a MySQL unique constraint violation.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
