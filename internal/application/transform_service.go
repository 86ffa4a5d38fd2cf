package application

import (
	"fmt"

	"github.com/railport/railport/internal/domain"
)

// TransformService runs one conversion: read the export, map every row,
// write the import file. Row-local failures are carried in the result;
// structural problems abort before anything is written.
type TransformService struct {
	reader       domain.TableReader
	writer       domain.TableWriter
	configLoader domain.ConfigLoader
}

// NewTransformService creates a TransformService with its I/O adapters.
func NewTransformService(reader domain.TableReader, writer domain.TableWriter, configLoader domain.ConfigLoader) *TransformService {
	return &TransformService{reader: reader, writer: writer, configLoader: configLoader}
}

// Transform converts inputPath into a Jira import file at outputPath.
func (s *TransformService) Transform(inputPath, outputPath, configPath string) (*domain.TransformResult, error) {
	result, err := s.run(inputPath, configPath)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(outputPath, result.Records); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return result, nil
}

// Preview maps inputPath without writing anything.
func (s *TransformService) Preview(inputPath, configPath string) (*domain.TransformResult, error) {
	return s.run(inputPath, configPath)
}

func (s *TransformService) run(inputPath, configPath string) (*domain.TransformResult, error) {
	cfg, err := s.configLoader.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := s.reader.Read(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	return domain.MapTable(table, cfg.Mapper())
}
