package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/request"
	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
	"github.com/syaifulazham/booth-visit/internal/api/middleware"
	"github.com/syaifulazham/booth-visit/internal/config"
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/service"
)

type VisitorService interface {
	Register(ctx context.Context, visitor domain.Visitor) (domain.Visitor, bool, error)
	CheckRegistration(ctx context.Context, cookieID string) (domain.Visitor, bool, error)
	GetProfile(ctx context.Context, cookieID string) (service.VisitorProfile, error)
	UpdateProfile(ctx context.Context, cookieID string, updated domain.Visitor) (domain.Visitor, error)
	ListVisitors(ctx context.Context) ([]domain.Visitor, error)
}

type VisitorHandler struct {
	conf *config.VisitorConfig
	svc  VisitorService
}

func NewVisitorHandler(conf *config.VisitorConfig, svc VisitorService) *VisitorHandler {
	return &VisitorHandler{
		conf: conf,
		svc:  svc,
	}
}

func (h *VisitorHandler) setVisitorCookie(ctx *gin.Context, cookieID string) {
	ctx.SetCookie(h.conf.CookieName, cookieID, h.conf.CookieMaxAge, "/", "", false, true)
}

// HandleRegister godoc
// @Summary      Register a visitor
// @Tags         visitors
// @Produce      json
// @Param        request   body      request.RegisterVisitorRequest true "request body"
// @Success      201      {object}   response.RegisterVisitorResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /visitors/register [post]
func (h *VisitorHandler) HandleRegister(ctx *gin.Context) {
	req := request.RegisterVisitorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	visitor, returning, err := h.svc.Register(ctx.Request.Context(), domain.Visitor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		State:       req.State,
		Age:         req.Age,
		VisitorType: req.VisitorType,
		Sektor:      req.Sektor,
	})
	if err != nil {
		if errors.Is(err, service.ErrVisitorEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrVisitorEmailExists))

			return
		}
		if errors.Is(err, service.ErrVisitorPhoneExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrVisitorPhoneExists))

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.setVisitorCookie(ctx, visitor.CookieID)

	status := http.StatusCreated
	if returning {
		status = http.StatusOK
	}

	ctx.JSON(status, response.RegisterVisitorResponse{
		Visitor:   visitor,
		Returning: returning,
	})
}

// HandleCheck godoc
// @Summary      Check whether the visitor cookie is registered
// @Tags         visitors
// @Produce      json
// @Success      200 {object} response.CheckRegistrationResponse
// @Failure      500 {object} response.Err
// @Router       /visitors/check [get]
func (h *VisitorHandler) HandleCheck(ctx *gin.Context) {
	cookie, err := ctx.Cookie(h.conf.CookieName)
	if err != nil || cookie == "" {
		ctx.JSON(http.StatusOK, response.CheckRegistrationResponse{Registered: false})

		return
	}

	visitor, registered, err := h.svc.CheckRegistration(ctx.Request.Context(), cookie)
	if err != nil {
		err = fmt.Errorf("v1.HandleCheck -> h.svc.CheckRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	resp := response.CheckRegistrationResponse{Registered: registered}
	if registered {
		resp.Visitor = &visitor

		// Refresh the cookie lifetime on activity.
		h.setVisitorCookie(ctx, cookie)
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleGetMe godoc
// @Summary      Get the visitor's profile with visits and achievements
// @Tags         visitors
// @Produce      json
// @Success      200 {object} service.VisitorProfile
// @Failure      401 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /visitors/me [get]
func (h *VisitorHandler) HandleGetMe(ctx *gin.Context) {
	cookieID := ctx.GetString(middleware.CtxKeyVisitorCookieID)

	profile, err := h.svc.GetProfile(ctx.Request.Context(), cookieID)
	if err != nil {
		if errors.Is(err, service.ErrVisitorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVisitorNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// HandleUpdate godoc
// @Summary      Update the visitor's profile
// @Tags         visitors
// @Produce      json
// @Param        request   body      request.UpdateVisitorRequest true "request body"
// @Success      200      {object}   domain.Visitor
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /visitors/update [put]
func (h *VisitorHandler) HandleUpdate(ctx *gin.Context) {
	cookieID := ctx.GetString(middleware.CtxKeyVisitorCookieID)

	req := request.UpdateVisitorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	visitor, err := h.svc.UpdateProfile(ctx.Request.Context(), cookieID, domain.Visitor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		State:       req.State,
		Age:         req.Age,
		VisitorType: req.VisitorType,
		Sektor:      req.Sektor,
	})
	if err != nil {
		if errors.Is(err, service.ErrVisitorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVisitorNotFound))

			return
		}
		if errors.Is(err, service.ErrVisitorEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrVisitorEmailExists))

			return
		}
		if errors.Is(err, service.ErrVisitorPhoneExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrVisitorPhoneExists))

			return
		}

		err = fmt.Errorf("v1.HandleUpdate -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, visitor)
}

// HandleListVisitors godoc
// @Summary      List registered visitors
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.Visitor
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/visitors [get]
func (h *VisitorHandler) HandleListVisitors(ctx *gin.Context) {
	visitors, err := h.svc.ListVisitors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListVisitors -> h.svc.ListVisitors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, visitors)
}
