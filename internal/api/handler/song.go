package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/musicclub-api/internal/domain/song"
)

// SongService のメソッド名
const (
	MethodCreateSong = "SongService/CreateSong"
	MethodGetSong    = "SongService/GetSong"
	MethodListSongs  = "SongService/ListSongs"
	MethodUpdateSong = "SongService/UpdateSong"
	MethodDeleteSong = "SongService/DeleteSong"
)

type SongHandler struct {
	songService SongServiceInterface
}

func NewSongHandler(songService SongServiceInterface) *SongHandler {
	return &SongHandler{songService: songService}
}

// SongPayload はリクエスト上の楽曲
type SongPayload struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Smoke on the Water"`
	Description string `json:"description" example:"定番曲"`
	Link        string `json:"link" example:"https://example.com/smoke"`
}

func (p *SongPayload) toEntity() *song.Song {
	return &song.Song{ID: p.ID, Title: p.Title, Description: p.Description, Link: p.Link}
}

type CreateSongRequest struct {
	Song *SongPayload `json:"song" validate:"required"`
}

type UpdateSongRequest struct {
	Song       *SongPayload `json:"song" validate:"required"`
	UpdateMask *FieldMask   `json:"update_mask"`
}

type SongResponse struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Smoke on the Water"`
	Description string `json:"description" example:"定番曲"`
	Link        string `json:"link" example:"https://example.com/smoke"`
}

type ListSongsResponse struct {
	Songs         []*SongResponse `json:"songs"`
	NextPageToken string          `json:"next_page_token"`
}

func toSongResponse(s *song.Song) *SongResponse {
	return &SongResponse{ID: s.ID, Title: s.Title, Description: s.Description, Link: s.Link}
}

// Register はメソッドをルートに登録する
func (h *SongHandler) Register(g *echo.Group) {
	g.POST("/"+MethodCreateSong, h.Create)
	g.POST("/"+MethodGetSong, h.Get)
	g.POST("/"+MethodListSongs, h.List)
	g.POST("/"+MethodUpdateSong, h.Update)
	g.POST("/"+MethodDeleteSong, h.Delete)
}

// Create godoc
// @Summary 楽曲を作成
// @Description 説明とリンクは空白のみなら未設定として保存されます
// @Tags songs
// @Accept json
// @Produce json
// @Param request body CreateSongRequest true "楽曲情報"
// @Success 200 {object} SongResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /rpc/SongService/CreateSong [post]
func (h *SongHandler) Create(c echo.Context) error {
	var req CreateSongRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.songService.Create(c.Request().Context(), req.Song.toEntity())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSongResponse(created))
}

// Get godoc
// @Summary 楽曲を取得
// @Tags songs
// @Accept json
// @Produce json
// @Param request body GetRequest true "楽曲ID"
// @Success 200 {object} SongResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/SongService/GetSong [post]
func (h *SongHandler) Get(c echo.Context) error {
	var req GetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	found, err := h.songService.Get(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSongResponse(found))
}

// List godoc
// @Summary 楽曲一覧を取得
// @Tags songs
// @Accept json
// @Produce json
// @Param request body ListRequest false "件数"
// @Success 200 {object} ListSongsResponse
// @Router /rpc/SongService/ListSongs [post]
func (h *SongHandler) List(c echo.Context) error {
	var req ListRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	songs, err := h.songService.List(c.Request().Context(), req.PageSize)
	if err != nil {
		return err
	}

	resp := make([]*SongResponse, len(songs))
	for i, item := range songs {
		resp[i] = toSongResponse(item)
	}
	return c.JSON(http.StatusOK, ListSongsResponse{Songs: resp})
}

// Update godoc
// @Summary 楽曲を更新
// @Description update_mask を省略すると全フィールドを置き換えます
// @Tags songs
// @Accept json
// @Produce json
// @Param request body UpdateSongRequest true "更新内容"
// @Success 200 {object} SongResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/SongService/UpdateSong [post]
func (h *SongHandler) Update(c echo.Context) error {
	var req UpdateSongRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.songService.Update(c.Request().Context(), req.Song.toEntity(), req.UpdateMask.paths())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSongResponse(updated))
}

// Delete godoc
// @Summary 楽曲を削除
// @Tags songs
// @Accept json
// @Produce json
// @Param request body DeleteRequest true "楽曲ID"
// @Success 200 {object} EmptyResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/SongService/DeleteSong [post]
func (h *SongHandler) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.songService.Delete(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EmptyResponse{})
}
