package application

import (
	"fmt"

	"github.com/railport/railport/internal/domain"
)

// ValidateService checks an export file without converting it, and can
// persist a text report of what it found.
type ValidateService struct {
	reader       domain.TableReader
	configLoader domain.ConfigLoader
	reportWriter domain.ReportWriter
}

// NewValidateService creates a ValidateService with its adapters.
func NewValidateService(reader domain.TableReader, configLoader domain.ConfigLoader, reportWriter domain.ReportWriter) *ValidateService {
	return &ValidateService{reader: reader, configLoader: configLoader, reportWriter: reportWriter}
}

// Validate runs the input checks on inputPath. When reportPath is non-empty
// it also dry-runs the mapping, validates the would-be output, and writes
// both halves to a report file.
func (s *ValidateService) Validate(inputPath, configPath, reportPath string) (*domain.ValidationResult, error) {
	cfg, err := s.configLoader.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := s.reader.Read(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	input := domain.ValidateTable(table, cfg)

	if reportPath != "" {
		output := &domain.ValidationResult{Valid: true}
		// Dry-run the mapping so the report covers the output side too.
		// A structural failure here is already reported on the input side.
		if result, err := domain.MapTable(table, cfg.Mapper()); err == nil {
			output = domain.ValidateOutput(result.Records, cfg)
		}
		if err := s.reportWriter.Write(reportPath, input, output); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}

	return input, nil
}
