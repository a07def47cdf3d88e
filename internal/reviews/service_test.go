package reviews

import (
	"context"
	"testing"

	"github.com/motormart/motormart-backend/pkg/db/models"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubReviewRepo struct {
	reviews     map[uint]*models.Review
	inventory   map[uint]bool
	updateCalls int
	deleteCalls int
	nextID      uint
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: map[uint]*models.Review{}, inventory: map[uint]bool{}, nextID: 1}
}

func (r *stubReviewRepo) addReview(accountID, inventoryID uint, text string) *models.Review {
	row := &models.Review{ID: r.nextID, Text: text, InventoryID: inventoryID, AccountID: accountID}
	r.nextID++
	r.reviews[row.ID] = row
	r.inventory[inventoryID] = true
	return row
}

func (r *stubReviewRepo) Create(_ context.Context, row *models.Review) (*models.Review, error) {
	row.ID = r.nextID
	r.nextID++
	r.reviews[row.ID] = row
	return row, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id uint) (*models.Review, error) {
	if row, ok := r.reviews[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReviewRepo) Owns(_ context.Context, reviewID, accountID uint) (bool, error) {
	row, ok := r.reviews[reviewID]
	return ok && row.AccountID == accountID, nil
}

func (r *stubReviewRepo) ListByInventory(_ context.Context, inventoryID uint) ([]*models.Review, error) {
	var out []*models.Review
	for _, row := range r.reviews {
		if row.InventoryID == inventoryID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByAccount(_ context.Context, accountID uint) ([]*models.Review, error) {
	var out []*models.Review
	for _, row := range r.reviews {
		if row.AccountID == accountID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) InventoryExists(_ context.Context, inventoryID uint) (bool, error) {
	return r.inventory[inventoryID], nil
}

func (r *stubReviewRepo) UpdateText(_ context.Context, reviewID, accountID uint, text string) (int64, error) {
	r.updateCalls++
	row, ok := r.reviews[reviewID]
	if !ok || row.AccountID != accountID {
		return 0, nil
	}
	row.Text = text
	return 1, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, reviewID, accountID uint) (int64, error) {
	r.deleteCalls++
	row, ok := r.reviews[reviewID]
	if !ok || row.AccountID != accountID {
		return 0, nil
	}
	delete(r.reviews, reviewID)
	return 1, nil
}

func newReviewService(t *testing.T, repo *stubReviewRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAddRejectsUnknownVehicle(t *testing.T) {
	svc := newReviewService(t, newStubReviewRepo())

	_, err := svc.Add(context.Background(), AddInput{Text: "Great car", InventoryID: 9, AccountID: 1})
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateByNonOwnerIsDeniedWithoutWriting(t *testing.T) {
	repo := newStubReviewRepo()
	repo.addReview(1, 5, "original text")
	svc := newReviewService(t, repo)

	_, err := svc.Update(context.Background(), UpdateInput{ReviewID: 1, AccountID: 2, Text: "hijacked"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeOwnership) {
		t.Fatalf("expected ownership denial, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("denied update must not reach the store")
	}
	if repo.reviews[1].Text != "original text" {
		t.Fatalf("review text changed: %q", repo.reviews[1].Text)
	}
}

func TestDeleteByNonOwnerIsDeniedWithoutWriting(t *testing.T) {
	repo := newStubReviewRepo()
	repo.addReview(1, 5, "keep me")
	svc := newReviewService(t, repo)

	err := svc.Delete(context.Background(), 1, 2)
	if !pkgerrors.IsCode(err, pkgerrors.CodeOwnership) {
		t.Fatalf("expected ownership denial, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("denied delete must not reach the store")
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("review disappeared")
	}
}

func TestOwnerCanUpdateAndDelete(t *testing.T) {
	repo := newStubReviewRepo()
	repo.addReview(1, 5, "first draft")
	svc := newReviewService(t, repo)

	updated, err := svc.Update(context.Background(), UpdateInput{ReviewID: 1, AccountID: 1, Text: "  final text  "})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Text != "final text" {
		t.Fatalf("expected trimmed text, got %q", updated.Text)
	}

	if err := svc.Delete(context.Background(), 1, 1); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.reviews) != 0 {
		t.Fatalf("review survived delete")
	}
}

func TestGetForOwnerGuardsTheEditScreen(t *testing.T) {
	repo := newStubReviewRepo()
	repo.addReview(1, 5, "mine")
	svc := newReviewService(t, repo)

	if _, err := svc.GetForOwner(context.Background(), 1, 1); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetForOwner(context.Background(), 1, 2); !pkgerrors.IsCode(err, pkgerrors.CodeOwnership) {
		t.Fatalf("expected ownership denial, got %v", err)
	}
	if _, err := svc.GetForOwner(context.Background(), 9, 1); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestScreenNameAbbreviatesFirstName(t *testing.T) {
	repo := newStubReviewRepo()
	row := repo.addReview(1, 5, "nice ride")
	row.Account = &models.Account{FirstName: "Jamie", LastName: "Doe"}
	svc := newReviewService(t, repo)

	list, err := svc.ListByInventory(context.Background(), 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ScreenName != "J. Doe" {
		t.Fatalf("unexpected screen name in %+v", list)
	}
}
