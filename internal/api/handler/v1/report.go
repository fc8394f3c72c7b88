package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
	"github.com/syaifulazham/booth-visit/internal/domain"
)

type ReportService interface {
	BoothReport(ctx context.Context) ([]domain.BoothReportRow, error)
	VisitorReport(ctx context.Context) ([]domain.VisitorReportRow, error)
	VisitReport(ctx context.Context) ([]domain.VisitReportRow, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleBoothReport godoc
// @Summary      Booth export rows with visit counts
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.BoothReportRow
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/reports/booths [get]
func (h *ReportHandler) HandleBoothReport(ctx *gin.Context) {
	rows, err := h.svc.BoothReport(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleBoothReport -> h.svc.BoothReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleVisitorReport godoc
// @Summary      Visitor export rows with visit counts
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.VisitorReportRow
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/reports/visitors [get]
func (h *ReportHandler) HandleVisitorReport(ctx *gin.Context) {
	rows, err := h.svc.VisitorReport(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleVisitorReport -> h.svc.VisitorReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleVisitReport godoc
// @Summary      Visit export rows with visitor and booth details
// @Tags         admin
// @Produce      json
// @Success      200 {object} []domain.VisitReportRow
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/reports/visits [get]
func (h *ReportHandler) HandleVisitReport(ctx *gin.Context) {
	rows, err := h.svc.VisitReport(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleVisitReport -> h.svc.VisitReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, rows)
}
