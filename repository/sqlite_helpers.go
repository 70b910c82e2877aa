package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// isUniqueViolation, SQLite UNIQUE constraint hatasını kontrol eder.
// modernc.org/sqlite typed error sabiti dışa açmadığı için mesaj
// üzerinden kontrol yapılır.
func isUniqueViolation(err error) bool {
	return err != nil && !errors.Is(err, sql.ErrNoRows) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
