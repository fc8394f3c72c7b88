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
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/service"
)

type BoothService interface {
	CreateBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error)
	GetBooth(ctx context.Context, id uint) (domain.Booth, error)
	ListBooths(ctx context.Context) ([]domain.Booth, error)
	VerifyBooth(ctx context.Context, hashcode string) (domain.Booth, error)
	UpdateBooth(ctx context.Context, booth domain.Booth) (domain.Booth, error)
	MarkQRCodeGenerated(ctx context.Context, id uint) error
	DeleteBooth(ctx context.Context, id uint) error
}

type BoothHandler struct {
	svc BoothService
}

func NewBoothHandler(svc BoothService) *BoothHandler {
	return &BoothHandler{
		svc: svc,
	}
}

// HandleListPublicBooths godoc
// @Summary      List booths for visitors
// @Tags         booths
// @Produce      json
// @Success      200 {object} []response.PublicBooth
// @Failure      500 {object} response.Err
// @Router       /booths/public [get]
func (h *BoothHandler) HandleListPublicBooths(ctx *gin.Context) {
	booths, err := h.svc.ListBooths(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPublicBooths -> h.svc.ListBooths -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPublicBooths(booths))
}

// HandleVerifyBooth godoc
// @Summary      Resolve a scanned booth hashcode
// @Tags         booths
// @Produce      json
// @Param        hashcode   path      string true "booth hashcode"
// @Success      200      {object}   response.VerifyBoothResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /booths/verify/{hashcode} [get]
func (h *BoothHandler) HandleVerifyBooth(ctx *gin.Context) {
	booth, err := h.svc.VerifyBooth(ctx.Request.Context(), ctx.Param("hashcode"))
	if err != nil {
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleVerifyBooth -> h.svc.VerifyBooth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewVerifyBoothResponse(booth))
}

// HandleListBooths godoc
// @Summary      List booths with visit counts
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.Booth
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/booths [get]
func (h *BoothHandler) HandleListBooths(ctx *gin.Context) {
	booths, err := h.svc.ListBooths(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBooths -> h.svc.ListBooths -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, booths)
}

// HandleGetBooth godoc
// @Summary      Get a booth
// @Tags         admin
// @Produce      json
// @Param        boothID   path      int true "booth ID"
// @Success      200      {object}   domain.Booth
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/booths/{boothID} [get]
func (h *BoothHandler) HandleGetBooth(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("boothID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid booth ID")))

		return
	}

	booth, err := h.svc.GetBooth(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetBooth -> h.svc.GetBooth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, booth)
}

// HandleCreateBooth godoc
// @Summary      Create a booth
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateBoothRequest true "request body"
// @Success      201      {object}   domain.Booth
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/booths [post]
func (h *BoothHandler) HandleCreateBooth(ctx *gin.Context) {
	req := request.CreateBoothRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	booth, err := h.svc.CreateBooth(ctx.Request.Context(), domain.Booth{
		BoothNumber:      req.BoothNumber,
		BoothName:        req.BoothName,
		Ministry:         req.Ministry,
		Agency:           req.Agency,
		AbbreviationName: req.AbbreviationName,
		PICName:          req.PICName,
		PICPhone:         req.PICPhone,
		PICEmail:         req.PICEmail,
	})
	if err != nil {
		var taken *service.BoothNumberTakenError
		if errors.As(err, &taken) {
			response.RenderErr(ctx, response.ErrConflict(taken))

			return
		}

		err = fmt.Errorf("v1.HandleCreateBooth -> h.svc.CreateBooth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, booth)
}

// HandleUpdateBooth godoc
// @Summary      Update a booth
// @Tags         admin
// @Produce      json
// @Param        boothID   path      int true "booth ID"
// @Param        request   body      request.UpdateBoothRequest true "request body"
// @Success      200      {object}   domain.Booth
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/booths/{boothID} [put]
func (h *BoothHandler) HandleUpdateBooth(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("boothID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid booth ID")))

		return
	}

	req := request.UpdateBoothRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	booth, err := h.svc.UpdateBooth(ctx.Request.Context(), domain.Booth{
		ID:               uint(id),
		BoothNumber:      req.BoothNumber,
		BoothName:        req.BoothName,
		Ministry:         req.Ministry,
		Agency:           req.Agency,
		AbbreviationName: req.AbbreviationName,
		PICName:          req.PICName,
		PICPhone:         req.PICPhone,
		PICEmail:         req.PICEmail,
	})
	if err != nil {
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}

		var taken *service.BoothNumberTakenError
		if errors.As(err, &taken) {
			response.RenderErr(ctx, response.ErrConflict(taken))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateBooth -> h.svc.UpdateBooth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, booth)
}

// HandleMarkQRGenerated godoc
// @Summary      Mark a booth's QR code as generated
// @Tags         admin
// @Produce      json
// @Param        boothID   path      int true "booth ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/booths/{boothID}/qr [post]
func (h *BoothHandler) HandleMarkQRGenerated(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("boothID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid booth ID")))

		return
	}

	if err = h.svc.MarkQRCodeGenerated(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleMarkQRGenerated -> h.svc.MarkQRCodeGenerated -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteBooth godoc
// @Summary      Delete a booth and its visits
// @Tags         admin
// @Produce      json
// @Param        boothID   path      int true "booth ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/booths/{boothID} [delete]
func (h *BoothHandler) HandleDeleteBooth(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("boothID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid booth ID")))

		return
	}

	if err = h.svc.DeleteBooth(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrBoothNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBoothNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteBooth -> h.svc.DeleteBooth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
