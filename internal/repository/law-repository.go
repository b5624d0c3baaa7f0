package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ailawatlas/catalog_service/internal/domain"
	"gorm.io/gorm"
)

var ErrLawNotFound = errors.New("law not found")

type LawRepository interface {
	ListLaws(ctx context.Context) ([]domain.Law, error)
	SearchLaws(ctx context.Context, query string) ([]domain.Law, error)
	FindLawById(ctx context.Context, lawID uint) (*domain.Law, error)
	CreateLaw(ctx context.Context, law *domain.Law) (*domain.Law, error)
	SaveLaw(ctx context.Context, law *domain.Law) error
	DeleteLaw(ctx context.Context, lawID uint) error
	CountLaws(ctx context.Context) (int64, error)
}

type lawRepository struct {
	db *gorm.DB
}

func NewLawRepository(db *gorm.DB) LawRepository {
	return &lawRepository{db: db}
}

func (r *lawRepository) ListLaws(ctx context.Context) ([]domain.Law, error) {
	var laws []domain.Law
	if err := r.db.WithContext(ctx).Order("id").Find(&laws).Error; err != nil {
		log.Printf("list laws error: %v", err)
		return nil, fmt.Errorf("failed to list laws: %w", err)
	}
	return laws, nil
}

func (r *lawRepository) SearchLaws(ctx context.Context, query string) ([]domain.Law, error) {
	var laws []domain.Law
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR country ILIKE ? OR summary ILIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&laws).Error
	if err != nil {
		log.Printf("search laws error: %v", err)
		return nil, fmt.Errorf("failed to search laws: %w", err)
	}
	return laws, nil
}

func (r *lawRepository) FindLawById(ctx context.Context, lawID uint) (*domain.Law, error) {
	law := &domain.Law{}
	if err := r.db.WithContext(ctx).First(law, lawID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawNotFound
		}
		log.Printf("find law by id error: %v", err)
		return nil, fmt.Errorf("failed to find law by ID: %w", err)
	}
	return law, nil
}

func (r *lawRepository) CreateLaw(ctx context.Context, law *domain.Law) (*domain.Law, error) {
	if law == nil {
		return nil, errors.New("nil law")
	}
	if err := r.db.WithContext(ctx).Create(law).Error; err != nil {
		log.Printf("create law error: %v", err)
		return nil, fmt.Errorf("failed to create law: %w", err)
	}
	return law, nil
}

func (r *lawRepository) SaveLaw(ctx context.Context, law *domain.Law) error {
	if law == nil {
		return errors.New("nil law")
	}
	if err := r.db.WithContext(ctx).Save(law).Error; err != nil {
		log.Printf("save law error: %v", err)
		return fmt.Errorf("failed to save law: %w", err)
	}
	return nil
}

func (r *lawRepository) DeleteLaw(ctx context.Context, lawID uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Law{}, lawID).Error; err != nil {
		log.Printf("delete law error: %v", err)
		return fmt.Errorf("failed to delete law: %w", err)
	}
	return nil
}

func (r *lawRepository) CountLaws(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Law{}).Count(&count).Error; err != nil {
		log.Printf("count laws error: %v", err)
		return 0, fmt.Errorf("failed to count laws: %w", err)
	}
	return count, nil
}
