package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
)

// NoticeHandler handles notice CRUD endpoints.
type NoticeHandler struct {
	noticeService service.NoticeService
}

// NewNoticeHandler creates a new notice handler.
func NewNoticeHandler(noticeService service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// CreateNoticeRequest represents a notice creation request.
type CreateNoticeRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=leave college"`
}

// UpdateNoticeRequest represents a partial notice update. Omitted fields keep
// their stored values.
type UpdateNoticeRequest struct {
	Title *string `json:"title"`
	Date  *string `json:"date"`
	Type  *string `json:"type"`
}

// NoticeResponse wraps a single notice.
type NoticeResponse struct {
	Message string        `json:"message,omitempty"`
	Notice  *model.Notice `json:"notice"`
}

// NoticeListResponse wraps the public notice feed.
type NoticeListResponse struct {
	Notices []model.Notice `json:"notices"`
}

// ListNotices godoc
// @Summary List all notices, newest event date first
// @Tags notices
// @Produce json
// @Success 200 {object} NoticeListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notices [get]
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	notices, err := h.noticeService.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list notices: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}
	return c.JSON(http.StatusOK, NoticeListResponse{Notices: notices})
}

// GetNotice godoc
// @Summary Get a single notice
// @Tags notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} NoticeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notices/{id} [get]
func (h *NoticeHandler) GetNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name a notice.
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrNoticeNotFound.Error())
	}

	notice, err := h.noticeService.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, NoticeResponse{Notice: notice})
}

// CreateNotice godoc
// @Summary Create a notice (admin only)
// @Tags notices
// @Accept json
// @Produce json
// @Param request body CreateNoticeRequest true "Notice data"
// @Success 201 {object} NoticeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notices [post]
func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	var req CreateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	date, err := parseNoticeDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	claims := auth.CurrentClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	notice, err := h.noticeService.Create(c.Request().Context(), req.Title, date, req.Type, claims.UserID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, NoticeResponse{
		Message: "Notice created",
		Notice:  notice,
	})
}

// UpdateNotice godoc
// @Summary Update a notice (admin only)
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param request body UpdateNoticeRequest true "Fields to change"
// @Success 200 {object} NoticeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notices/{id} [put]
func (h *NoticeHandler) UpdateNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrNoticeNotFound.Error())
	}

	var req UpdateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := service.NoticeUpdate{
		Title: req.Title,
		Type:  req.Type,
	}
	if req.Date != nil {
		date, err := parseNoticeDate(*req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrMissingFields.Error())
		}
		update.Date = &date
	}

	notice, err := h.noticeService.Update(c.Request().Context(), id, update)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, NoticeResponse{
		Message: "Notice updated",
		Notice:  notice,
	})
}

// DeleteNotice godoc
// @Summary Delete a notice (admin only)
// @Tags notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notices/{id} [delete]
func (h *NoticeHandler) DeleteNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrNoticeNotFound.Error())
	}

	if err := h.noticeService.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Notice deleted",
	})
}

// mapError converts service errors into HTTP errors, logging unexpected ones.
func (h *NoticeHandler) mapError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("notice: %v", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}

// parseNoticeDate accepts a plain calendar date or a full RFC3339 timestamp.
func parseNoticeDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
