package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Event{},
		&Booth{},
		&Visitor{},
		&Visit{},
	)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, constraint)
}
