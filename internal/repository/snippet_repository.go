//go:generate mockery --name SnippetRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_learn2code/internal/middleware"
	"go_5_learn2code/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SnippetRepository interface {
	Create(ctx context.Context, db *gorm.DB, snippet *model.Snippet) error
	FindByID(ctx context.Context, db *gorm.DB, snippetID uuid.UUID) (*model.Snippet, error)
	FindUnit(ctx context.Context, db *gorm.DB, snippetID uuid.UUID, unitID uuid.UUID) (*model.TeachingUnit, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.Snippet, error)
}

type gormSnippetRepository struct{}

func NewGormSnippetRepository() SnippetRepository {
	return &gormSnippetRepository{}
}

// Create はスニペットをユニットごと保存します (関連はGORMが一括INSERT)。
func (r *gormSnippetRepository) Create(ctx context.Context, db *gorm.DB, snippet *model.Snippet) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(snippet)
	if result.Error != nil {
		logger.Error(
			"Error creating snippet in DB",
			"error", result.Error,
			"title", snippet.Title,
		)
		return fmt.Errorf("gormSnippetRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormSnippetRepository) FindByID(ctx context.Context, db *gorm.DB, snippetID uuid.UUID) (*model.Snippet, error) {
	logger := middleware.GetLogger(ctx)
	var snippet model.Snippet

	result := db.WithContext(ctx).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("snippet_id = ?", snippetID).
		First(&snippet)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding snippet by ID in DB",
			"error", result.Error,
			"snippet_id", snippetID.String(),
		)
		return nil, fmt.Errorf("gormSnippetRepository.FindByID: %w", result.Error)
	}
	return &snippet, nil
}

func (r *gormSnippetRepository) FindUnit(ctx context.Context, db *gorm.DB, snippetID uuid.UUID, unitID uuid.UUID) (*model.TeachingUnit, error) {
	logger := middleware.GetLogger(ctx)
	var unit model.TeachingUnit

	result := db.WithContext(ctx).
		Where("snippet_id = ? AND unit_id = ?", snippetID, unitID).
		First(&unit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding teaching unit in DB",
			"error", result.Error,
			"snippet_id", snippetID.String(),
			"unit_id", unitID.String(),
		)
		return nil, fmt.Errorf("gormSnippetRepository.FindUnit: %w", result.Error)
	}
	return &unit, nil
}

func (r *gormSnippetRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.Snippet, error) {
	logger := middleware.GetLogger(ctx)
	var snippets []model.Snippet

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&snippets)
	if result.Error != nil {
		logger.Error(
			"Error listing snippets in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSnippetRepository.ListByUser: %w", result.Error)
	}
	return snippets, nil
}
