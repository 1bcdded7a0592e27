package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// Code はRPC呼び出しの結果コード
type Code string

const (
	CodeOK               Code = "ok"
	CodeInvalidArgument  Code = "invalid_argument"
	CodeNotFound         Code = "not_found"
	CodePermissionDenied Code = "permission_denied"
	CodeInternal         Code = "internal"
)

// internalMessage はクライアントに返す内部エラーの固定メッセージ
const internalMessage = "内部エラーが発生しました"

// Error はコード付きのドメインエラー
//
// Msg はクライアントに返すメッセージ、Op と Err は運用者向けの診断情報。
// Err はログにのみ出力し、レスポンスには含めない。
type Error struct {
	Code Code
	Msg  string
	Op   string
	Err  error
}

// Error はエラー文字列を返す
func (e *Error) Error() string {
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap はラップされたエラーを返す
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument は入力不正エラーを作成する
func InvalidArgument(msg string) *Error {
	return &Error{Code: CodeInvalidArgument, Msg: msg}
}

// InvalidArgumentf はフォーマット付きの入力不正エラーを作成する
func InvalidArgumentf(format string, args ...any) *Error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

// NotFound はリソース未検出エラーを作成する
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Msg: msg}
}

// PermissionDenied は権限エラーを作成する
func PermissionDenied(msg string) *Error {
	return &Error{Code: CodePermissionDenied, Msg: msg}
}

// Internal はストア層の失敗をラップした内部エラーを作成する
func Internal(op string, err error) *Error {
	return &Error{Code: CodeInternal, Msg: "ストア操作に失敗しました", Op: op, Err: err}
}

// ErrorCode はエラーからコードを取り出す。nil は CodeOK、コードを持たないエラーは CodeInternal
func ErrorCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return CodeInternal
}

// ErrorMessage はクライアントに返してよいメッセージを返す
func ErrorMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Code == CodeInternal {
		return internalMessage
	}
	return e.Msg
}

// HTTPStatus はコードに対応するHTTPステータスを返す
func HTTPStatus(code Code) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromHTTPStatus はHTTPステータスからコードを推定する
func CodeFromHTTPStatus(status int) Code {
	switch {
	case status < http.StatusBadRequest:
		return CodeOK
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusForbidden, status == http.StatusUnauthorized:
		return CodePermissionDenied
	case status < http.StatusInternalServerError:
		return CodeInvalidArgument
	default:
		return CodeInternal
	}
}
