package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// ErrMalformedRequest はJSONとして解釈できないリクエストを表す
var ErrMalformedRequest = resource.InvalidArgument("リクエストの形式が不正です")

// GetRequest は Get 系メソッドのリクエスト
type GetRequest struct {
	Name string `json:"name" example:"42"`
}

// DeleteRequest は Delete 系メソッドのリクエスト
type DeleteRequest struct {
	Name string `json:"name" example:"42"`
}

// ListRequest は List 系メソッドのリクエスト
type ListRequest struct {
	PageSize int32 `json:"page_size" example:"100"`
}

// FieldMask は Update で書き換えるフィールドの一覧
type FieldMask struct {
	Paths []string `json:"paths" example:"name"`
}

// EmptyResponse は Delete 系メソッドのレスポンス
type EmptyResponse struct{}

// paths は未指定のマスクを空として扱う
func (m *FieldMask) paths() []string {
	if m == nil {
		return nil
	}
	return m.Paths
}

// bind はリクエストボディを読み込み、必須項目を検証する
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return ErrMalformedRequest
	}
	return c.Validate(req)
}
