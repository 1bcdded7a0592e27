package api

import (
	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// CustomValidator はEcho用のカスタムバリデーター
//
// ドメインと同じ規則（required / notblank）で検証し、InvalidArgument を返す。
type CustomValidator struct{}

// NewValidator は新しいバリデーターを作成する
func NewValidator() *CustomValidator {
	return &CustomValidator{}
}

// Validate はリクエストのバリデーションを実行する
func (cv *CustomValidator) Validate(i interface{}) error {
	return resource.Validate(i)
}
