package usecase

import (
	"errors"
	"fmt"

	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"go.uber.org/zap"
)

type ErrorCode string

const (
	// 入力が制約に違反
	CodeValidation ErrorCode = "validation"
	// 対象が存在しない
	CodeNotFound ErrorCode = "not_found"
	// 参照先が存在しない
	CodeReference ErrorCode = "reference"
	// 一意制約の競合
	CodeConflict ErrorCode = "conflict"
	// DB障害など
	CodeInternal ErrorCode = "internal"
)

// 1操作の失敗。Fieldは検証エラーのときだけ入る。
type AppError struct {
	Code    ErrorCode
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string) error {
	return &AppError{Code: code, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

// 項目を指定した検証エラー
func invalid(field string, message string) error {
	return &AppError{Code: CodeValidation, Field: field, Message: message}
}

// validator.Struct / Var の結果をAppErrorへ
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var fe *validator.FieldError
	if errors.As(err, &fe) {
		return &AppError{Code: CodeValidation, Field: fe.Field, Message: fe.Constraint, Err: err}
	}
	return &AppError{Code: CodeValidation, Message: err.Error(), Err: err}
}

// repositoryのエラーを分類する。想定外のものだけErrorで記録。
func repoError(logger *zap.Logger, op string, err error, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, repo.ErrNotFound):
		return &AppError{Code: CodeNotFound, Message: "not found", Err: err}
	case errors.Is(err, repo.ErrDuplicate):
		return &AppError{Code: CodeConflict, Message: "already exists", Err: err}
	case errors.Is(err, repo.ErrReference):
		return &AppError{Code: CodeReference, Message: "referenced row does not exist", Err: err}
	case errors.Is(err, repo.ErrCheck):
		return &AppError{Code: CodeValidation, Message: "check constraint violated", Err: err}
	}

	logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return &AppError{Code: CodeInternal, Message: "db error", Err: err}
}

// 参照先の取得で見つからない場合はreferenceにする
func referenceError(logger *zap.Logger, op string, field string, err error, fields ...zap.Field) error {
	if errors.Is(err, repo.ErrNotFound) {
		return &AppError{Code: CodeReference, Field: field, Message: "referenced row does not exist", Err: err}
	}
	return repoError(logger, op, err, fields...)
}

// codeが一致するときだけ項目名を付ける
func withField(err error, code ErrorCode, field string) error {
	if ae, ok := AsAppError(err); ok && ae.Code == code && ae.Field == "" {
		ae.Field = field
	}
	return err
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
