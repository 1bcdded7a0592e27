package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/musicclub-api/internal/domain/participation"
)

// ParticipationService のメソッド名
const (
	MethodCreateParticipation = "ParticipationService/CreateParticipation"
	MethodGetParticipation    = "ParticipationService/GetParticipation"
	MethodListParticipations  = "ParticipationService/ListParticipations"
	MethodUpdateParticipation = "ParticipationService/UpdateParticipation"
	MethodDeleteParticipation = "ParticipationService/DeleteParticipation"
)

type ParticipationHandler struct {
	participationService ParticipationServiceInterface
}

func NewParticipationHandler(participationService ParticipationServiceInterface) *ParticipationHandler {
	return &ParticipationHandler{participationService: participationService}
}

// ParticipationPayload はリクエスト上の参加情報
type ParticipationPayload struct {
	SongID   int64  `json:"song_id" example:"10"`
	PersonID int64  `json:"tg_id" example:"123456789"`
	Role     string `json:"role_title" example:"Drums"`
}

func (p *ParticipationPayload) toEntity() *participation.Participation {
	return participation.NewParticipation(p.SongID, p.PersonID, p.Role)
}

type CreateParticipationRequest struct {
	Participation *ParticipationPayload `json:"participation" validate:"required"`
}

// UpdateParticipationRequest は参加情報の更新リクエスト
// 更新対象はペイロードの (song_id, tg_id, role_title) で決まる
type UpdateParticipationRequest struct {
	Participation *ParticipationPayload `json:"participation" validate:"required"`
	UpdateMask    *FieldMask            `json:"update_mask"`
}

type ParticipationResponse struct {
	SongID   int64  `json:"song_id" example:"10"`
	PersonID int64  `json:"tg_id" example:"123456789"`
	Role     string `json:"role_title" example:"Drums"`
}

type ListParticipationsResponse struct {
	Participations []*ParticipationResponse `json:"participations"`
	NextPageToken  string                   `json:"next_page_token"`
}

func toParticipationResponse(p *participation.Participation) *ParticipationResponse {
	return &ParticipationResponse{SongID: p.SongID, PersonID: p.PersonID, Role: p.Role}
}

// Register はメソッドをルートに登録する
func (h *ParticipationHandler) Register(g *echo.Group) {
	g.POST("/"+MethodCreateParticipation, h.Create)
	g.POST("/"+MethodGetParticipation, h.Get)
	g.POST("/"+MethodListParticipations, h.List)
	g.POST("/"+MethodUpdateParticipation, h.Update)
	g.POST("/"+MethodDeleteParticipation, h.Delete)
}

// Create godoc
// @Summary 参加情報を作成
// @Tags participations
// @Accept json
// @Produce json
// @Param request body CreateParticipationRequest true "参加情報"
// @Success 200 {object} ParticipationResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /rpc/ParticipationService/CreateParticipation [post]
func (h *ParticipationHandler) Create(c echo.Context) error {
	var req CreateParticipationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.participationService.Create(c.Request().Context(), req.Participation.toEntity())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParticipationResponse(created))
}

// Get godoc
// @Summary 参加情報を取得
// @Description name は "<song_id>:<tg_id>:<role_title>" 形式です
// @Tags participations
// @Accept json
// @Produce json
// @Param request body GetRequest true "song_id:tg_id:role_title"
// @Success 200 {object} ParticipationResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ParticipationService/GetParticipation [post]
func (h *ParticipationHandler) Get(c echo.Context) error {
	var req GetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	found, err := h.participationService.Get(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParticipationResponse(found))
}

// List godoc
// @Summary 参加情報一覧を取得
// @Tags participations
// @Accept json
// @Produce json
// @Param request body ListRequest false "件数"
// @Success 200 {object} ListParticipationsResponse
// @Router /rpc/ParticipationService/ListParticipations [post]
func (h *ParticipationHandler) List(c echo.Context) error {
	var req ListRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	items, err := h.participationService.List(c.Request().Context(), req.PageSize)
	if err != nil {
		return err
	}

	resp := make([]*ParticipationResponse, len(items))
	for i, item := range items {
		resp[i] = toParticipationResponse(item)
	}
	return c.JSON(http.StatusOK, ListParticipationsResponse{Participations: resp})
}

// Update godoc
// @Summary 参加情報を更新
// @Description 更新対象はペイロードの (song_id, tg_id, role_title) で決まります
// @Tags participations
// @Accept json
// @Produce json
// @Param request body UpdateParticipationRequest true "更新内容"
// @Success 200 {object} ParticipationResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ParticipationService/UpdateParticipation [post]
func (h *ParticipationHandler) Update(c echo.Context) error {
	var req UpdateParticipationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.participationService.Update(c.Request().Context(), req.Participation.toEntity(), req.UpdateMask.paths())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParticipationResponse(updated))
}

// Delete godoc
// @Summary 参加情報を削除
// @Tags participations
// @Accept json
// @Produce json
// @Param request body DeleteRequest true "song_id:tg_id:role_title"
// @Success 200 {object} EmptyResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /rpc/ParticipationService/DeleteParticipation [post]
func (h *ParticipationHandler) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.participationService.Delete(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EmptyResponse{})
}
