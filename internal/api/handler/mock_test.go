package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// MockResourceService はResourceServiceInterfaceのモック
type MockResourceService[E any] struct {
	mock.Mock
}

func (m *MockResourceService[E]) Create(ctx context.Context, payload *E) (*E, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockResourceService[E]) Get(ctx context.Context, name string) (*E, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockResourceService[E]) List(ctx context.Context, pageSize int32) ([]*E, error) {
	args := m.Called(ctx, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*E), args.Error(1)
}

func (m *MockResourceService[E]) Update(ctx context.Context, proposed *E, paths []string) (*E, error) {
	args := m.Called(ctx, proposed, paths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockResourceService[E]) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// newRPCContext はJSONボディ付きのRPCリクエストのコンテキストを作成する
func newRPCContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+method, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// serveRPC はルーティングとエラーハンドラーを通してRPCを実行する
func serveRPC(e *echo.Echo, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+method, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
