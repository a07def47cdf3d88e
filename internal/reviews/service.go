package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/motormart/motormart-backend/pkg/db/models"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"gorm.io/gorm"
)

const notYoursMessage = "You can only change your own reviews."

// Service defines the review behaviors needed by the controllers.
type Service interface {
	Add(ctx context.Context, input AddInput) (*Review, error)
	GetForOwner(ctx context.Context, reviewID, accountID uint) (*Review, error)
	ListByInventory(ctx context.Context, inventoryID uint) ([]Review, error)
	ListByAccount(ctx context.Context, accountID uint) ([]Review, error)
	Update(ctx context.Context, input UpdateInput) (*Review, error)
	Delete(ctx context.Context, reviewID, accountID uint) error
}

type reviewRepository interface {
	Create(ctx context.Context, row *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	Owns(ctx context.Context, reviewID, accountID uint) (bool, error)
	ListByInventory(ctx context.Context, inventoryID uint) ([]*models.Review, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*models.Review, error)
	InventoryExists(ctx context.Context, inventoryID uint) (bool, error)
	UpdateText(ctx context.Context, reviewID, accountID uint, text string) (int64, error)
	Delete(ctx context.Context, reviewID, accountID uint) (int64, error)
}

type service struct {
	repo reviewRepository
}

// NewService constructs the reviews service.
func NewService(repo reviewRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Add(ctx context.Context, input AddInput) (*Review, error) {
	exists, err := s.repo.InventoryExists(ctx, input.InventoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check vehicle")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}

	row, err := s.repo.Create(ctx, &models.Review{
		Text:        strings.TrimSpace(input.Text),
		InventoryID: input.InventoryID,
		AccountID:   input.AccountID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
	}

	review := fromModel(row)
	return &review, nil
}

// GetForOwner loads a review for editing. Reading someone else's review
// through the edit screen is denied the same way a write would be.
func (s *service) GetForOwner(ctx context.Context, reviewID, accountID uint) (*Review, error) {
	row, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup review")
	}
	if row.AccountID != accountID {
		return nil, pkgerrors.New(pkgerrors.CodeOwnership, notYoursMessage)
	}
	review := fromModel(row)
	return &review, nil
}

func (s *service) ListByInventory(ctx context.Context, inventoryID uint) ([]Review, error) {
	rows, err := s.repo.ListByInventory(ctx, inventoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	return collect(rows), nil
}

func (s *service) ListByAccount(ctx context.Context, accountID uint) ([]Review, error) {
	rows, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	return collect(rows), nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Review, error) {
	if err := s.requireOwner(ctx, input.ReviewID, input.AccountID); err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateText(ctx, input.ReviewID, input.AccountID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update review")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
	}
	return s.GetForOwner(ctx, input.ReviewID, input.AccountID)
}

func (s *service) Delete(ctx context.Context, reviewID, accountID uint) error {
	if err := s.requireOwner(ctx, reviewID, accountID); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, reviewID, accountID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete review")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
	}
	return nil
}

// requireOwner refuses before any mutating query runs. A missing review
// reads as not found; an existing review owned by someone else reads as an
// ownership denial.
func (s *service) requireOwner(ctx context.Context, reviewID, accountID uint) error {
	owns, err := s.repo.Owns(ctx, reviewID, accountID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check ownership")
	}
	if owns {
		return nil
	}

	if _, err := s.repo.FindByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup review")
	}
	return pkgerrors.New(pkgerrors.CodeOwnership, notYoursMessage)
}

func collect(rows []*models.Review) []Review {
	out := make([]Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out
}
