package services

import (
	"context"
	"strings"

	"github.com/ailawatlas/catalog_service/internal/apperr"
	"github.com/ailawatlas/catalog_service/internal/domain"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/repository"
)

type LawService interface {
	ListLaws(ctx context.Context) ([]domain.Law, error)
	SearchLaws(ctx context.Context, query string) ([]domain.Law, error)
	GetLaw(ctx context.Context, lawID uint) (*domain.Law, error)
	CreateLaw(ctx context.Context, input dto.LawInput) (*domain.Law, error)
	UpdateLaw(ctx context.Context, lawID uint, input dto.LawInput) (*domain.Law, error)
	DeleteLaw(ctx context.Context, lawID uint) error
}

type lawService struct {
	repo repository.LawRepository
}

func NewLawService(repo repository.LawRepository) LawService {
	return &lawService{repo: repo}
}

func (s *lawService) ListLaws(ctx context.Context) ([]domain.Law, error) {
	laws, err := s.repo.ListLaws(ctx)
	if err != nil {
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return laws, nil
}

func (s *lawService) SearchLaws(ctx context.Context, query string) ([]domain.Law, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Law{}, nil
	}

	laws, err := s.repo.SearchLaws(ctx, query)
	if err != nil {
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return laws, nil
}

func (s *lawService) GetLaw(ctx context.Context, lawID uint) (*domain.Law, error) {
	law, err := s.repo.FindLawById(ctx, lawID)
	if err != nil {
		if err == repository.ErrLawNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return law, nil
}

func (s *lawService) CreateLaw(ctx context.Context, input dto.LawInput) (*domain.Law, error) {
	if strings.TrimSpace(input.Country) == "" || strings.TrimSpace(input.Title) == "" {
		return nil, apperr.New(apperr.ErrInvalidInput.Code, "country and title are required", nil)
	}

	law := &domain.Law{
		Country:  strings.TrimSpace(input.Country),
		Title:    strings.TrimSpace(input.Title),
		Summary:  input.Summary,
		FullText: input.FullText,
	}

	created, err := s.repo.CreateLaw(ctx, law)
	if err != nil {
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return created, nil
}

func (s *lawService) UpdateLaw(ctx context.Context, lawID uint, input dto.LawInput) (*domain.Law, error) {
	if strings.TrimSpace(input.Country) == "" || strings.TrimSpace(input.Title) == "" {
		return nil, apperr.New(apperr.ErrInvalidInput.Code, "country and title are required", nil)
	}

	law, err := s.repo.FindLawById(ctx, lawID)
	if err != nil {
		if err == repository.ErrLawNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	law.Country = strings.TrimSpace(input.Country)
	law.Title = strings.TrimSpace(input.Title)
	law.Summary = input.Summary
	law.FullText = input.FullText

	if err := s.repo.SaveLaw(ctx, law); err != nil {
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return law, nil
}

func (s *lawService) DeleteLaw(ctx context.Context, lawID uint) error {
	if err := s.repo.DeleteLaw(ctx, lawID); err != nil {
		return apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return nil
}
