package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"backoffice/internal/domain/model"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// 入力値が制約に違反した
var ErrInvalid = errors.New("validation failed")

// どの項目がどの制約に違反したか
type FieldError struct {
	Field      string
	Constraint string
	Value      any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Constraint)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()

	// 項目名はjsonタグの名前を使う
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimalはfloat64として数値比較させる
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "br_state", func(fl playground.FieldLevel) bool {
		return model.StateCode(fl.Field().String()).Valid()
	})
	mustRegister(v, "order_status", func(fl playground.FieldLevel) bool {
		return model.OrderStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "payment_status", func(fl playground.FieldLevel) bool {
		return model.PaymentStatus(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// 構造体のタグで検証し、最初の違反をFieldErrorで返す
func Struct(s any) error {
	return firstFieldError(validate.Struct(s), "")
}

// 単体の値を検証する（fieldは報告用の名前）
func Var(field string, value any, tag string) error {
	return firstFieldError(validate.Var(value, tag), field)
}

func firstFieldError(err error, field string) error {
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	name := fe.Field()
	if field != "" {
		name = field
	}

	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}

	return &FieldError{
		Field:      name,
		Constraint: constraint,
		Value:      fe.Value(),
	}
}
