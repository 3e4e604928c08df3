package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type documentService struct {
	documents repository.DocumentRepo
}

func NewDocumentService(documents repository.DocumentRepo) DocumentService {
	return &documentService{documents: documents}
}

func (s *documentService) Create(ctx context.Context, title, content, authorID string) (*domain.DmsDocument, error) {
	d := &domain.DmsDocument{
		ID:          uuid.New().String(),
		Title:       title,
		Content:     content,
		AuthorID:    authorID,
		LastUpdated: time.Now().UTC(),
	}
	if err := s.documents.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *documentService) GetByID(ctx context.Context, id string) (*domain.DmsDocument, error) {
	return s.documents.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context) ([]*domain.DmsDocument, error) {
	return s.documents.List(ctx)
}

func (s *documentService) Update(ctx context.Context, d *domain.DmsDocument) error {
	d.LastUpdated = time.Now().UTC()
	return s.documents.Update(ctx, d)
}
