package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

type SpreadsheetGenerator interface {
	Clients(clients []model.Client) ([]byte, error)
	Prospects(prospects []model.Prospect) ([]byte, error)
	PriceReferences(refs []model.PriceReference) ([]byte, error)
}

type DocumentGenerator interface {
	PriceReference(ref model.PriceReference) ([]byte, error)
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ExportService struct {
	clients   *ClientService
	prospects *ProspectService
	prices    *PriceReferenceService
	excel     SpreadsheetGenerator
	pdf       DocumentGenerator
	now       func() time.Time
}

func NewExportService(
	clients *ClientService,
	prospects *ProspectService,
	prices *PriceReferenceService,
	excel SpreadsheetGenerator,
	pdf DocumentGenerator,
) *ExportService {
	return &ExportService{
		clients:   clients,
		prospects: prospects,
		prices:    prices,
		excel:     excel,
		pdf:       pdf,
		now:       time.Now,
	}
}

func (s *ExportService) Clients(ctx context.Context, filter repository.ClientFilter) (*ExportResult, error) {
	clients, err := s.clients.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Clients(clients)
	if err != nil {
		return nil, fmt.Errorf("generate clients workbook: %w", err)
	}
	return s.workbook("clients", content), nil
}

func (s *ExportService) Prospects(ctx context.Context, filter repository.ProspectFilter) (*ExportResult, error) {
	prospects, err := s.prospects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Prospects(prospects)
	if err != nil {
		return nil, fmt.Errorf("generate prospects workbook: %w", err)
	}
	return s.workbook("prospects", content), nil
}

func (s *ExportService) PriceReferences(ctx context.Context, filter repository.PriceReferenceFilter) (*ExportResult, error) {
	refs, err := s.prices.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.PriceReferences(refs)
	if err != nil {
		return nil, fmt.Errorf("generate price references workbook: %w", err)
	}
	return s.workbook("price-references", content), nil
}

// PriceReferenceSheet renders one price reference as a PDF.
func (s *ExportService) PriceReferenceSheet(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	ref, err := s.prices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.PriceReference(*ref)
	if err != nil {
		return nil, fmt.Errorf("generate price sheet: %w", err)
	}

	name := sanitizeFileName(ref.Name)
	if name == "" {
		name = ref.ID.String()
	}
	return &ExportResult{
		FileName:    fmt.Sprintf("price-reference-%s.pdf", strings.ToLower(name)),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func (s *ExportService) workbook(kind string, content []byte) *ExportResult {
	return &ExportResult{
		FileName:    fmt.Sprintf("%s-%s.xlsx", kind, s.now().Format("20060102")),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}
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
