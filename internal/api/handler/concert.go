package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/musicclub-api/internal/domain/concert"
)

// ConcertService のメソッド名
const (
	MethodCreateConcert = "ConcertService/CreateConcert"
	MethodGetConcert    = "ConcertService/GetConcert"
	MethodListConcerts  = "ConcertService/ListConcerts"
	MethodUpdateConcert = "ConcertService/UpdateConcert"
	MethodDeleteConcert = "ConcertService/DeleteConcert"
)

type ConcertHandler struct {
	concertService ConcertServiceInterface
}

func NewConcertHandler(concertService ConcertServiceInterface) *ConcertHandler {
	return &ConcertHandler{concertService: concertService}
}

// ConcertPayload はリクエスト上のコンサート
type ConcertPayload struct {
	ID   int64      `json:"id" example:"1"`
	Name string     `json:"name" example:"春の定期演奏会"`
	Date *time.Time `json:"date" example:"2025-04-01T00:00:00Z"`
}

func (p *ConcertPayload) toEntity() *concert.Concert {
	return &concert.Concert{ID: p.ID, Name: p.Name, Date: concert.DateOf(p.Date)}
}

type CreateConcertRequest struct {
	Concert *ConcertPayload `json:"concert" validate:"required"`
}

type UpdateConcertRequest struct {
	Concert    *ConcertPayload `json:"concert" validate:"required"`
	UpdateMask *FieldMask      `json:"update_mask"`
}

type ConcertResponse struct {
	ID   int64      `json:"id" example:"1"`
	Name string     `json:"name" example:"春の定期演奏会"`
	Date *time.Time `json:"date" example:"2025-04-01T00:00:00Z"`
}

type ListConcertsResponse struct {
	Concerts      []*ConcertResponse `json:"concerts"`
	NextPageToken string             `json:"next_page_token"`
}

func toConcertResponse(c *concert.Concert) *ConcertResponse {
	return &ConcertResponse{ID: c.ID, Name: c.Name, Date: c.Date}
}

// Register はメソッドをルートに登録する
func (h *ConcertHandler) Register(g *echo.Group) {
	g.POST("/"+MethodCreateConcert, h.Create)
	g.POST("/"+MethodGetConcert, h.Get)
	g.POST("/"+MethodListConcerts, h.List)
	g.POST("/"+MethodUpdateConcert, h.Update)
	g.POST("/"+MethodDeleteConcert, h.Delete)
}

// Create godoc
// @Summary コンサートを作成
// @Tags concerts
// @Accept json
// @Produce json
// @Param request body CreateConcertRequest true "コンサート情報"
// @Success 200 {object} ConcertResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse
// @Router /rpc/ConcertService/CreateConcert [post]
func (h *ConcertHandler) Create(c echo.Context) error {
	var req CreateConcertRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.concertService.Create(c.Request().Context(), req.Concert.toEntity())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConcertResponse(created))
}

// Get godoc
// @Summary コンサートを取得
// @Tags concerts
// @Param request body GetRequest true "コンサートID"
// @Success 200 {object} ConcertResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ConcertService/GetConcert [post]
func (h *ConcertHandler) Get(c echo.Context) error {
	var req GetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	found, err := h.concertService.Get(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConcertResponse(found))
}

// List godoc
// @Summary コンサート一覧を取得
// @Tags concerts
// @Param request body ListRequest false "件数"
// @Success 200 {object} ListConcertsResponse
// @Router /rpc/ConcertService/ListConcerts [post]
func (h *ConcertHandler) List(c echo.Context) error {
	var req ListRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	concerts, err := h.concertService.List(c.Request().Context(), req.PageSize)
	if err != nil {
		return err
	}

	resp := make([]*ConcertResponse, len(concerts))
	for i, item := range concerts {
		resp[i] = toConcertResponse(item)
	}
	return c.JSON(http.StatusOK, ListConcertsResponse{Concerts: resp})
}

// Update godoc
// @Summary コンサートを更新
// @Description update_mask を省略すると全フィールドを置き換えます
// @Tags concerts
// @Param request body UpdateConcertRequest true "更新内容"
// @Success 200 {object} ConcertResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ConcertService/UpdateConcert [post]
func (h *ConcertHandler) Update(c echo.Context) error {
	var req UpdateConcertRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.concertService.Update(c.Request().Context(), req.Concert.toEntity(), req.UpdateMask.paths())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConcertResponse(updated))
}

// Delete godoc
// @Summary コンサートを削除
// @Tags concerts
// @Param request body DeleteRequest true "コンサートID"
// @Success 200 {object} EmptyResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ConcertService/DeleteConcert [post]
func (h *ConcertHandler) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.concertService.Delete(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EmptyResponse{})
}
