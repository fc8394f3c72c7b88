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

type AdminService interface {
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	CreateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	UpdateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	DeleteAdmin(ctx context.Context, callerID, id uint) error
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleListAdmins godoc
// @Summary      List admin users
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.Admin
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/users [get]
func (h *AdminHandler) HandleListAdmins(ctx *gin.Context) {
	admins, err := h.svc.ListAdmins(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmins -> h.svc.ListAdmins -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admins)
}

// HandleCreateAdmin godoc
// @Summary      Create an admin user
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateAdminRequest true "request body"
// @Success      201      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/users [post]
func (h *AdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	req := request.CreateAdminRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.CreateAdmin(ctx.Request.Context(), domain.Admin{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAdminEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAdmin -> h.svc.CreateAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// HandleUpdateAdmin godoc
// @Summary      Update an admin user
// @Tags         admin
// @Produce      json
// @Param        userID    path       int true "user ID"
// @Param        request   body       request.UpdateAdminRequest true "request body"
// @Success      200      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/users/{userID} [put]
func (h *AdminHandler) HandleUpdateAdmin(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user ID")))

		return
	}

	req := request.UpdateAdminRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.UpdateAdmin(ctx.Request.Context(), domain.Admin{
		ID:       uint(id),
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}
		if errors.Is(err, service.ErrAdminEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAdminEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateAdmin -> h.svc.UpdateAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleDeleteAdmin godoc
// @Summary      Delete an admin user
// @Tags         admin
// @Produce      json
// @Param        userID   path       int true "user ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/users/{userID} [delete]
func (h *AdminHandler) HandleDeleteAdmin(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user ID")))

		return
	}

	callerID := ctx.GetUint(middleware.CtxKeyAdminID)

	if err = h.svc.DeleteAdmin(ctx.Request.Context(), callerID, uint(id)); err != nil {
		if errors.Is(err, service.ErrSelfDeletion) {
			response.RenderErr(ctx, response.ErrForbidden(service.ErrSelfDeletion))

			return
		}
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAdmin -> h.svc.DeleteAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
