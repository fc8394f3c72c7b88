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
	"github.com/syaifulazham/booth-visit/internal/pkg/jwthelper"
	"github.com/syaifulazham/booth-visit/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Admin, error)
	GetAdmin(ctx context.Context, id uint) (domain.Admin, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login an admin
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong email or password")))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), admin.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		Admin: admin,
	})
}

// HandleGetMe godoc
// @Summary      Get the authenticated admin
// @Tags         auth
// @Produce      json
// @Success      200 {object} domain.Admin
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/me [get]
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	adminID := ctx.GetUint(middleware.CtxKeyAdminID)

	admin, err := h.svc.GetAdmin(ctx.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, admin)
}
