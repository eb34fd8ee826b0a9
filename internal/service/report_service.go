package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/agroexchange/internal/config"
	"github.com/nurpe/agroexchange/internal/dashboard"
)

type ExcelGenerator interface {
	Generate(d *dashboard.Dashboard) ([]byte, error)
}

type PDFGenerator interface {
	Generate(d *dashboard.Dashboard) ([]byte, error)
}

type ChartRenderer interface {
	PriceTrend(d *dashboard.Dashboard) ([]byte, error)
}

type ReportService struct {
	sessions *Sessions
	excel    ExcelGenerator
	pdf      PDFGenerator
	charts   ChartRenderer
	currency string
	now      func() time.Time
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewReportService(sessions *Sessions, excel ExcelGenerator, pdf PDFGenerator, charts ChartRenderer, cfg *config.Config) *ReportService {
	return &ReportService{
		sessions: sessions,
		excel:    excel,
		pdf:      pdf,
		charts:   charts,
		currency: cfg.Dashboard.Currency,
		now:      time.Now,
	}
}

func (s *ReportService) Dashboard(id uuid.UUID) (*dashboard.Dashboard, error) {
	snap, err := s.sessions.Screen(id)
	if err != nil {
		return nil, err
	}
	d, err := dashboard.Build(snap.Screen, s.currency)
	if err != nil {
		if errors.Is(err, dashboard.ErrNotReady) {
			return nil, fmt.Errorf("%w: %v", ErrNotOnDashboard, err)
		}
		return nil, err
	}
	return d, nil
}

func (s *ReportService) ExportExcel(id uuid.UUID) (*ExportResult, error) {
	d, err := s.Dashboard(id)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(d)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName:    s.buildFileName(d, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

func (s *ReportService) ExportPDF(id uuid.UUID) (*ExportResult, error) {
	d, err := s.Dashboard(id)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(d)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName:    s.buildFileName(d, "pdf"),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (s *ReportService) PriceTrendPNG(id uuid.UUID) (*ExportResult, error) {
	d, err := s.Dashboard(id)
	if err != nil {
		return nil, err
	}
	content, err := s.charts.PriceTrend(d)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName:    s.buildFileName(d, "png"),
		ContentType: "image/png",
		Content:     content,
	}, nil
}

func (s *ReportService) buildFileName(d *dashboard.Dashboard, ext string) string {
	role := strings.ToLower(string(d.Role))
	residue := sanitizeFileName(string(d.FocusResidue()))
	if residue == "" {
		residue = "residue"
	}
	return fmt.Sprintf("agroexchange-%s-%s-%s.%s", role, strings.ToLower(residue), s.now().Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
