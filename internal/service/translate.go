// internal/service/translate.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mohamedevweb/services-co/internal/ai"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

// DocumentTranslator translates a paginated document while keeping its
// layout metadata intact.
type DocumentTranslator interface {
	TranslateDocument(ctx context.Context, doc ai.Document, targetLanguage string) (ai.Document, error)
}

type TranslateService struct {
	repo       repository.TranslationRepositoryIface
	translator DocumentTranslator
}

func NewTranslateService(repo repository.TranslationRepositoryIface, translator DocumentTranslator) *TranslateService {
	return &TranslateService{repo: repo, translator: translator}
}

type TranslateInput struct {
	Content        []byte
	TargetLanguage string
	OrganizationID int64
}

// Create translates the document and stores both the source and the result.
// Content must be the paginated block layout in JSON form.
func (s *TranslateService) Create(ctx context.Context, input TranslateInput) (*model.Translation, error) {
	if input.TargetLanguage == "" || input.OrganizationID == 0 {
		return nil, fmt.Errorf("%w: targetLanguage and organizationId are required", domain.ErrInvalidInput)
	}

	var doc ai.Document
	if err := json.Unmarshal(input.Content, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding document: %v", domain.ErrInvalidInput, err)
	}

	translated, err := s.translator.TranslateDocument(ctx, doc, input.TargetLanguage)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(translated)
	if err != nil {
		return nil, fmt.Errorf("encoding translated document: %w", err)
	}

	translation := &model.Translation{
		Content:        string(input.Content),
		Translated:     string(out),
		OrganizationID: input.OrganizationID,
	}
	if err := s.repo.Create(ctx, translation); err != nil {
		return nil, err
	}
	return translation, nil
}

func (s *TranslateService) ListByOrganization(ctx context.Context, organizationID int64) ([]*model.Translation, error) {
	return s.repo.FindByOrganization(ctx, organizationID)
}
