package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/request"
	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
	"github.com/syaifulazham/booth-visit/internal/api/middleware"
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/service"
)

type VisitService interface {
	LogVisit(ctx context.Context, cookieID, hashcode string, ipAddress, userAgent *string) (domain.Visit, error)
	GetVisit(ctx context.Context, cookieID string, visitID uint) (domain.Visit, error)
	SetRating(ctx context.Context, cookieID string, visitID uint, rating int, comment *string) (domain.Visit, error)
}

type VisitHandler struct {
	svc VisitService
}

func NewVisitHandler(svc VisitService) *VisitHandler {
	return &VisitHandler{
		svc: svc,
	}
}

// HandleLogVisit godoc
// @Summary      Log a booth visit from a scanned hashcode
// @Tags         visits
// @Produce      json
// @Param        request   body      request.LogVisitRequest true "request body"
// @Success      201      {object}   domain.Visit
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /visits/log [post]
func (h *VisitHandler) HandleLogVisit(ctx *gin.Context) {
	cookieID := ctx.GetString(middleware.CtxKeyVisitorCookieID)

	req := request.LogVisitRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ip := ctx.ClientIP()
	userAgent := ctx.Request.UserAgent()

	visit, err := h.svc.LogVisit(ctx.Request.Context(), cookieID, req.Hashcode, &ip, &userAgent)
	if err != nil {
		if errors.Is(err, service.ErrVisitorNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrVisitorNotFound))

			return
		}
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}
		if errors.Is(err, service.ErrAlreadyVisited) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyVisited))

			return
		}

		err = fmt.Errorf("v1.HandleLogVisit -> h.svc.LogVisit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, visit)
}

// HandleRateVisit godoc
// @Summary      Rate a visited booth
// @Tags         visits
// @Produce      json
// @Param        request   body      request.RateVisitRequest true "request body"
// @Success      200      {object}   domain.Visit
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /visits/rate [post]
func (h *VisitHandler) HandleRateVisit(ctx *gin.Context) {
	cookieID := ctx.GetString(middleware.CtxKeyVisitorCookieID)

	req := request.RateVisitRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	visit, err := h.svc.SetRating(ctx.Request.Context(), cookieID, req.VisitID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrVisitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVisitNotFound))

			return
		}
		if errors.Is(err, service.ErrVisitForbidden) {
			response.RenderErr(ctx, response.ErrForbidden(service.ErrVisitForbidden))

			return
		}

		err = fmt.Errorf("v1.HandleRateVisit -> h.svc.SetRating -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, visit)
}

// HandleGetVisit godoc
// @Summary      Get one of the visitor's visits
// @Tags         visits
// @Produce      json
// @Param        visitID   path      int true "visit ID"
// @Success      200      {object}   domain.Visit
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /visits/{visitID} [get]
func (h *VisitHandler) HandleGetVisit(ctx *gin.Context) {
	cookieID := ctx.GetString(middleware.CtxKeyVisitorCookieID)

	id, err := strconv.ParseUint(ctx.Param("visitID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid visit ID")))

		return
	}

	visit, err := h.svc.GetVisit(ctx.Request.Context(), cookieID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVisitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVisitNotFound))

			return
		}
		if errors.Is(err, service.ErrVisitForbidden) {
			response.RenderErr(ctx, response.ErrForbidden(service.ErrVisitForbidden))

			return
		}

		err = fmt.Errorf("v1.HandleGetVisit -> h.svc.GetVisit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, visit)
}
