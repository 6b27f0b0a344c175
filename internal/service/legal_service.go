package service

import (
	"autoworld/internal/domain"
	"autoworld/internal/dto"
)

// LegalService serves the static policy documents.
type LegalService interface {
	List() []dto.LegalDocumentSummary
	Get(slug string) (*domain.LegalDocument, error)
}

type legalServiceImpl struct {
	docs []domain.LegalDocument
}

func NewLegalService(docs []domain.LegalDocument) LegalService {
	return &legalServiceImpl{docs: docs}
}

func (s *legalServiceImpl) List() []dto.LegalDocumentSummary {
	out := make([]dto.LegalDocumentSummary, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, dto.LegalDocumentSummary{Slug: d.Slug, Title: d.Title})
	}
	return out
}

func (s *legalServiceImpl) Get(slug string) (*domain.LegalDocument, error) {
	doc, err := domain.FindLegalDocument(s.docs, slug)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
