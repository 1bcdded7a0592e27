package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
	"github.com/sanosuguru/musicclub-api/internal/domain/song"
)

func TestSongHandler_Create(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に楽曲を作成できる", func(t *testing.T) {
		mockService := new(MockResourceService[song.Song])
		handler := NewSongHandler(mockService)
		mockService.On("Create", mock.Anything, song.NewSong("Burn", "", "https://example.com/burn")).
			Return(&song.Song{ID: 7, Title: "Burn", Link: "https://example.com/burn"}, nil)

		c, rec := newRPCContext(e, MethodCreateSong, `{"song": {"title": "Burn", "link": "https://example.com/burn"}}`)

		require.NoError(t, handler.Create(c))

		var resp SongResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "", resp.Description)
		mockService.AssertExpectations(t)
	})

	t.Run("サービスの内部エラーはそのまま返す", func(t *testing.T) {
		mockService := new(MockResourceService[song.Song])
		handler := NewSongHandler(mockService)
		storeErr := resource.Internal("楽曲作成", errors.New("connection refused"))
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, storeErr)

		c, _ := newRPCContext(e, MethodCreateSong, `{"song": {"title": "Burn"}}`)

		assert.ErrorIs(t, handler.Create(c), storeErr)
	})
}

func TestSongHandler_ThroughRouter(t *testing.T) {
	t.Run("内部エラーは500で詳細を隠す", func(t *testing.T) {
		e := NewTestEcho()
		mockService := new(MockResourceService[song.Song])
		NewSongHandler(mockService).Register(e.Group("/rpc"))
		mockService.On("Get", mock.Anything, "1").
			Return(nil, resource.Internal("楽曲取得", errors.New("pq: password authentication failed")))

		rec := serveRPC(e, MethodGetSong, `{"name": "1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.Contains(t, rec.Body.String(), `"code":"internal"`)
	})

	t.Run("一覧", func(t *testing.T) {
		e := NewTestEcho()
		mockService := new(MockResourceService[song.Song])
		NewSongHandler(mockService).Register(e.Group("/rpc"))
		mockService.On("List", mock.Anything, int32(10000)).Return([]*song.Song{{ID: 1, Title: "A"}}, nil)

		rec := serveRPC(e, MethodListSongs, `{"page_size": 10000}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"songs":[{"id":1,"title":"A","description":"","link":""}],"next_page_token":""}`, rec.Body.String())
	})

	t.Run("更新", func(t *testing.T) {
		e := NewTestEcho()
		mockService := new(MockResourceService[song.Song])
		NewSongHandler(mockService).Register(e.Group("/rpc"))
		mockService.On("Update", mock.Anything, &song.Song{ID: 3, Title: "T", Link: "L"}, []string{"link"}).
			Return(&song.Song{ID: 3, Title: "Old", Link: "L"}, nil)

		rec := serveRPC(e, MethodUpdateSong, `{"song": {"id": 3, "title": "T", "link": "L"}, "update_mask": {"paths": ["link"]}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Old"`)
		mockService.AssertExpectations(t)
	})

	t.Run("削除", func(t *testing.T) {
		e := NewTestEcho()
		mockService := new(MockResourceService[song.Song])
		NewSongHandler(mockService).Register(e.Group("/rpc"))
		mockService.On("Delete", mock.Anything, "3").Return(nil)

		rec := serveRPC(e, MethodDeleteSong, `{"name": "3"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
