package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/request"
	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
	"github.com/syaifulazham/booth-visit/internal/backup"
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/service"
)

type EventService interface {
	GetEvent(ctx context.Context) (domain.Event, error)
	UpsertEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ResetEvent(ctx context.Context) (service.ResetResult, error)
	ListBackups(ctx context.Context) ([]backup.FileInfo, error)
	RestoreBackup(ctx context.Context, filename string) (service.RestoreResult, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetPublicEvent godoc
// @Summary      Get the current event
// @Tags         event
// @Produce      json
// @Success      200 {object} domain.Event
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /event/public [get]
func (h *EventHandler) HandleGetPublicEvent(ctx *gin.Context) {
	event, err := h.svc.GetEvent(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetPublicEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetEvent godoc
// @Summary      Get the event settings
// @Tags         admin
// @Produce      json
// @Success      200 {object} domain.Event
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/event [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	event, err := h.svc.GetEvent(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Create or update the event settings
// @Tags         admin
// @Produce      json
// @Param        request   body      request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/event [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	req := request.UpdateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.UpsertEvent(ctx.Request.Context(), domain.Event{
		Name:        req.Name,
		Slogan:      req.Slogan,
		Venue:       req.Venue,
		DateStart:   req.DateStart,
		DateEnd:     req.DateEnd,
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpsertEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleResetEvent godoc
// @Summary      Back up and wipe all booths, visitors and visits
// @Tags         admin
// @Produce      json
// @Success      200 {object} service.ResetResult
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/event/reset [post]
func (h *EventHandler) HandleResetEvent(ctx *gin.Context) {
	result, err := h.svc.ResetEvent(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleResetEvent -> h.svc.ResetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleListBackups godoc
// @Summary      List backup files, newest first
// @Tags         admin
// @Produce      json
// @Success      200 {object} []backup.FileInfo
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/event/backups [get]
func (h *EventHandler) HandleListBackups(ctx *gin.Context) {
	backups, err := h.svc.ListBackups(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBackups -> h.svc.ListBackups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, backups)
}

// HandleRestoreBackup godoc
// @Summary      Replace all event data with a backup's contents
// @Tags         admin
// @Produce      json
// @Param        request   body      request.RestoreBackupRequest true "request body"
// @Success      200      {object}   service.RestoreResult
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/event/restore [post]
func (h *EventHandler) HandleRestoreBackup(ctx *gin.Context) {
	req := request.RestoreBackupRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.RestoreBackup(ctx.Request.Context(), req.Filename)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBackupFilename) || errors.Is(err, service.ErrInvalidBackupFormat) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrBackupReadFailed) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBackupReadFailed))

			return
		}

		err = fmt.Errorf("v1.HandleRestoreBackup -> h.svc.RestoreBackup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, result)
}
