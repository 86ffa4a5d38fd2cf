package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/railport/railport/internal/domain"
)

// FileOutcome is the result of converting one file in a batch run.
type FileOutcome struct {
	Input  string                  `json:"input"`
	Output string                  `json:"output,omitempty"`
	Result *domain.TransformResult `json:"result,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// BatchSummary aggregates a whole directory run. A file that fails does
// not stop the rest of the batch.
type BatchSummary struct {
	Outcomes  []FileOutcome `json:"outcomes"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// BatchService converts every matching file in a directory.
type BatchService struct {
	transform *TransformService
}

// NewBatchService creates a BatchService on top of a TransformService.
func NewBatchService(transform *TransformService) *BatchService {
	return &BatchService{transform: transform}
}

// Run converts the files in inputDir matching pattern (e.g. "*.csv") into
// outputDir, one "<stem>_transformed.csv" per input.
func (s *BatchService) Run(inputDir, outputDir, pattern, configPath string) (*BatchSummary, error) {
	matches, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files matching %q in %s", pattern, inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	summary := &BatchSummary{}
	for _, input := range matches {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output := filepath.Join(outputDir, stem+"_transformed.csv")

		result, err := s.transform.Transform(input, output, configPath)
		if err != nil {
			summary.Failed++
			summary.Outcomes = append(summary.Outcomes, FileOutcome{Input: input, Error: err.Error()})
			continue
		}
		summary.Succeeded++
		summary.Outcomes = append(summary.Outcomes, FileOutcome{Input: input, Output: output, Result: result})
	}

	return summary, nil
}
