// internal/service/extraction.go
package service

import (
	"context"
	"fmt"

	"github.com/mohamedevweb/services-co/internal/ai"
	"github.com/mohamedevweb/services-co/internal/domain"
)

// ProfileExtractor turns free text about a person into a structured
// freelancer profile.
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, prompt string) (*ai.ProfileExtraction, error)
}

type ExtractionService struct {
	extractor ProfileExtractor
}

func NewExtractionService(extractor ProfileExtractor) *ExtractionService {
	return &ExtractionService{extractor: extractor}
}

type ExtractProfileInput struct {
	Prompt string `json:"prompt"`
}

func (s *ExtractionService) ExtractProfile(ctx context.Context, input ExtractProfileInput) (*ai.ProfileExtraction, error) {
	if input.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrInvalidInput)
	}
	return s.extractor.ExtractProfile(ctx, input.Prompt)
}
