package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/pkg/logger"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// HeaderUserID は呼び出し元IDを運ぶヘッダー
const HeaderUserID = "X-User-Id"

// ErrAdminRequired は管理者限定メソッドへのアクセス拒否を表す
var ErrAdminRequired = resource.PermissionDenied("管理者権限が必要です")

// AccessPolicy は管理者限定メソッドと管理者IDの組。作成後は変更しない
type AccessPolicy struct {
	privileged map[string]struct{}
	admins     map[uint64]struct{}
}

// NewAccessPolicy は AccessPolicy を作成する
func NewAccessPolicy(privilegedMethods []string, adminIDs []uint64) *AccessPolicy {
	p := &AccessPolicy{
		privileged: make(map[string]struct{}, len(privilegedMethods)),
		admins:     make(map[uint64]struct{}, len(adminIDs)),
	}
	for _, m := range privilegedMethods {
		p.privileged[m] = struct{}{}
	}
	for _, id := range adminIDs {
		p.admins[id] = struct{}{}
	}
	return p
}

// RequiresAdmin はメソッドが管理者限定かどうかを返す
func (p *AccessPolicy) RequiresAdmin(method string) bool {
	_, ok := p.privileged[method]
	return ok
}

// IsAdmin は呼び出し元IDが管理者かどうかを返す
func (p *AccessPolicy) IsAdmin(id uint64) bool {
	_, ok := p.admins[id]
	return ok
}

// Authorization は管理者限定メソッドを呼び出し元IDで制限するインターセプター
//
// 拒否した場合は後段を呼ばずに PermissionDenied を返す。
// m が nil の場合は拒否数を記録しない。
func Authorization(policy *AccessPolicy, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := MethodName(c)
			if !policy.RequiresAdmin(method) {
				return next(c)
			}

			id, ok := callerID(c)
			if !ok || !policy.IsAdmin(id) {
				logger.Debug("管理者限定メソッドへのアクセスを拒否",
					zap.String("method", method),
					zap.Bool("has_user_id", ok),
				)
				if m != nil {
					m.AuthorizationDenied.WithLabelValues(method).Inc()
				}
				return ErrAdminRequired
			}
			return next(c)
		}
	}
}

// callerID はヘッダーから数値の呼び出し元IDを取り出す
func callerID(c echo.Context) (uint64, bool) {
	raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
