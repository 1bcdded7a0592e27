package resource

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーメッセージには json タグ名を使う
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// 前後の空白を除いて空でないこと
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate は validate タグに従って構造体を検証する
//
// 最初に違反したフィールド名を含む InvalidArgument を返す。
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return InvalidArgument("リクエストの形式が不正です")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return InvalidArgumentf("%s は必須です", fe.Field())
	case "gt":
		return InvalidArgumentf("%s は正の値である必要があります", fe.Field())
	default:
		return InvalidArgumentf("%s が不正です", fe.Field())
	}
}
