package db

import (
	"errors"
	"fmt"

	repo "backoffice/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// PostgreSQLのSQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ドライバのエラーをrepositoryの共通エラーに変換する。
// 変換できないものはそのまま返す。
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return wrap(repo.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return wrap(repo.ErrReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(repo.ErrDuplicate, err)
		case pgForeignKeyViolation:
			return wrap(repo.ErrReference, err)
		case pgCheckViolation:
			return wrap(repo.ErrCheck, err)
		}
	}

	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		switch sqErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return wrap(repo.ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey:
			return wrap(repo.ErrReference, err)
		case sqlite3.ErrConstraintCheck:
			return wrap(repo.ErrCheck, err)
		}
	}

	return err
}

func wrap(sentinel error, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}
