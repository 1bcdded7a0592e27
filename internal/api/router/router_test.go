package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/musicclub-api/internal/api/middleware"
	"github.com/sanosuguru/musicclub-api/internal/config"
	"github.com/sanosuguru/musicclub-api/internal/domain/concert"
	"github.com/sanosuguru/musicclub-api/internal/domain/participation"
	"github.com/sanosuguru/musicclub-api/internal/domain/song"
	"github.com/sanosuguru/musicclub-api/internal/pkg/metrics"
)

// stubService は呼び出し回数だけを記録するサービス
type stubService[E any] struct {
	calls int
}

func (s *stubService[E]) Create(ctx context.Context, payload *E) (*E, error) {
	s.calls++
	return payload, nil
}

func (s *stubService[E]) Get(ctx context.Context, name string) (*E, error) {
	s.calls++
	return new(E), nil
}

func (s *stubService[E]) List(ctx context.Context, pageSize int32) ([]*E, error) {
	s.calls++
	return []*E{}, nil
}

func (s *stubService[E]) Update(ctx context.Context, proposed *E, paths []string) (*E, error) {
	s.calls++
	return proposed, nil
}

func (s *stubService[E]) Delete(ctx context.Context, name string) error {
	s.calls++
	return nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type fixture struct {
	deps     Deps
	concerts *stubService[concert.Concert]
	songs    *stubService[song.Song]
}

func newFixture(metricsCfg config.MetricsConfig, pingErr error) *fixture {
	reg := prometheus.NewRegistry()
	f := &fixture{
		concerts: &stubService[concert.Concert]{},
		songs:    &stubService[song.Song]{},
	}
	f.deps = Deps{
		Config: &config.Config{
			Auth: config.AuthConfig{
				AdminIDs:          []uint64{7},
				PrivilegedMethods: []string{"ConcertService/CreateConcert"},
			},
			Metrics: metricsCfg,
		},
		Metrics:              metrics.NewWithRegistry(reg),
		Gatherer:             reg,
		DB:                   stubPinger{err: pingErr},
		ConcertService:       f.concerts,
		SongService:          f.songs,
		ParticipationService: &stubService[participation.Participation]{},
	}
	return f
}

func rpc(method, body, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, middleware.RPCPrefix+"/"+method, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	return req
}

func serve(f *fixture, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	New(f.deps).ServeHTTP(rec, req)
	return rec
}

func TestNew_Health(t *testing.T) {
	t.Run("DB疎通あり", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{}, nil)
		rec := serve(f, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DB疎通なし", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{}, errors.New("connection refused"))
		rec := serve(f, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestNew_PrivilegedMethod(t *testing.T) {
	body := `{"concert":{"name":"春の定期演奏会"}}`

	t.Run("管理者以外は拒否されサービスは呼ばれない", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{}, nil)
		e := New(f.deps)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, rpc("ConcertService/CreateConcert", body, "8"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, f.concerts.calls)
	})

	t.Run("管理者は作成できる", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{}, nil)

		rec := serve(f, rpc("ConcertService/CreateConcert", body, "7"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, f.concerts.calls)
		assert.Contains(t, rec.Body.String(), "春の定期演奏会")
	})
}

func TestNew_PublicMethods(t *testing.T) {
	f := newFixture(config.MetricsConfig{}, nil)
	e := New(f.deps)

	for _, method := range []string{
		"ConcertService/ListConcerts",
		"SongService/ListSongs",
		"ParticipationService/ListParticipations",
	} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, rpc(method, `{"page_size":10}`, ""))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
	assert.Equal(t, 1, f.concerts.calls)
	assert.Equal(t, 1, f.songs.calls)
}

func TestNew_UnknownMethod(t *testing.T) {
	f := newFixture(config.MetricsConfig{}, nil)

	rec := serve(f, rpc("ConcertService/RenameConcert", `{}`, ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_Metrics(t *testing.T) {
	t.Run("認証なしで公開", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{}, nil)
		e := New(f.deps)

		e.ServeHTTP(httptest.NewRecorder(), rpc("ConcertService/CreateConcert", `{"concert":{"name":"x"}}`, ""))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `rpc_requests_total{code="permission_denied",method="ConcertService/CreateConcert"} 1`)
		assert.Contains(t, rec.Body.String(), `rpc_authorization_denied_total{method="ConcertService/CreateConcert"} 1`)
	})

	t.Run("Basic認証が設定されている場合", func(t *testing.T) {
		f := newFixture(config.MetricsConfig{User: "prom", Password: "secret"}, nil)
		e := New(f.deps)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.SetBasicAuth("prom", "secret")
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
