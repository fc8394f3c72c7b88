package service

import (
	"context"
	"fmt"

	"github.com/syaifulazham/booth-visit/internal/domain"
)

type ReportBoothRepository interface {
	FindAll(ctx context.Context) ([]domain.Booth, error)
}

type ReportVisitorRepository interface {
	FindAll(ctx context.Context) ([]domain.Visitor, error)
}

type ReportVisitRepository interface {
	FindAll(ctx context.Context) ([]domain.Visit, error)
}

// ReportService flattens booths, visitors and visits into export rows.
type ReportService struct {
	booths   ReportBoothRepository
	visitors ReportVisitorRepository
	visits   ReportVisitRepository
}

func NewReportService(booths ReportBoothRepository, visitors ReportVisitorRepository, visits ReportVisitRepository) *ReportService {
	return &ReportService{
		booths:   booths,
		visitors: visitors,
		visits:   visits,
	}
}

func (s *ReportService) BoothReport(ctx context.Context) ([]domain.BoothReportRow, error) {
	booths, err := s.booths.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.booths.FindAll -> %w", err)
	}

	rows := make([]domain.BoothReportRow, 0, len(booths))
	for _, booth := range booths {
		rows = append(rows, domain.BoothReportRow{
			ID:               booth.ID,
			BoothNumber:      booth.BoothNumber,
			BoothName:        booth.BoothName,
			Ministry:         booth.Ministry,
			Agency:           booth.Agency,
			AbbreviationName: booth.AbbreviationName,
			QRCodeGenerated:  booth.QRCodeGenerated,
			VisitCount:       booth.VisitCount,
			CreatedAt:        booth.CreatedAt,
		})
	}

	return rows, nil
}

func (s *ReportService) VisitorReport(ctx context.Context) ([]domain.VisitorReportRow, error) {
	visitors, err := s.visitors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.visitors.FindAll -> %w", err)
	}

	visits, err := s.visits.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.visits.FindAll -> %w", err)
	}

	counts := make(map[uint]int, len(visitors))
	for _, visit := range visits {
		counts[visit.VisitorID]++
	}

	rows := make([]domain.VisitorReportRow, 0, len(visitors))
	for _, visitor := range visitors {
		rows = append(rows, domain.VisitorReportRow{
			ID:          visitor.ID,
			Name:        visitor.Name,
			Email:       visitor.Email,
			Phone:       visitor.Phone,
			Gender:      visitor.Gender,
			State:       visitor.State,
			Age:         visitor.Age,
			VisitorType: visitor.VisitorType,
			Sektor:      visitor.Sektor,
			VisitCount:  counts[visitor.ID],
			CreatedAt:   visitor.CreatedAt,
		})
	}

	return rows, nil
}

func (s *ReportService) VisitReport(ctx context.Context) ([]domain.VisitReportRow, error) {
	visits, err := s.visits.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.visits.FindAll -> %w", err)
	}

	rows := make([]domain.VisitReportRow, 0, len(visits))
	for _, visit := range visits {
		row := domain.VisitReportRow{
			ID:        visit.ID,
			VisitedAt: visit.VisitedAt,
			Rating:    visit.Rating,
			Comment:   visit.Comment,
		}
		if visit.Visitor != nil {
			row.VisitorName = visit.Visitor.Name
			row.VisitorEmail = visit.Visitor.Email
		}
		if visit.Booth != nil {
			row.BoothNumber = visit.Booth.BoothNumber
			row.BoothName = visit.Booth.BoothName
		}

		rows = append(rows, row)
	}

	return rows, nil
}
