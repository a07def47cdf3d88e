package inventory

import (
	"context"
	"testing"

	"github.com/motormart/motormart-backend/pkg/db/models"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubInventoryRepo struct {
	classifications map[uint]*models.Classification
	vehicles        map[uint]*models.InventoryItem
	createClassCnt  int
	nextID          uint
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{
		classifications: map[uint]*models.Classification{},
		vehicles:        map[uint]*models.InventoryItem{},
		nextID:          1,
	}
}

func (r *stubInventoryRepo) addClassification(name string) *models.Classification {
	row := &models.Classification{ID: r.nextID, Name: name}
	r.nextID++
	r.classifications[row.ID] = row
	return row
}

func (r *stubInventoryRepo) ListClassifications(_ context.Context) ([]*models.Classification, error) {
	out := make([]*models.Classification, 0, len(r.classifications))
	for _, row := range r.classifications {
		out = append(out, row)
	}
	return out, nil
}

func (r *stubInventoryRepo) FindClassificationByID(_ context.Context, id uint) (*models.Classification, error) {
	if row, ok := r.classifications[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) CreateClassification(_ context.Context, row *models.Classification) (*models.Classification, error) {
	r.createClassCnt++
	row.ID = r.nextID
	r.nextID++
	r.classifications[row.ID] = row
	return row, nil
}

func (r *stubInventoryRepo) ClassificationNameExists(_ context.Context, name string) (bool, error) {
	for _, row := range r.classifications {
		if row.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubInventoryRepo) ClassificationExists(_ context.Context, id uint) (bool, error) {
	_, ok := r.classifications[id]
	return ok, nil
}

func (r *stubInventoryRepo) CreateVehicle(_ context.Context, row *models.InventoryItem) (*models.InventoryItem, error) {
	row.ID = r.nextID
	r.nextID++
	r.vehicles[row.ID] = row
	return row, nil
}

func (r *stubInventoryRepo) FindVehicleByID(_ context.Context, id uint) (*models.InventoryItem, error) {
	row, ok := r.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	if classification, ok := r.classifications[row.ClassificationID]; ok {
		copied.Classification = classification
	}
	return &copied, nil
}

func (r *stubInventoryRepo) ListVehiclesByClassification(_ context.Context, classificationID uint) ([]*models.InventoryItem, error) {
	var out []*models.InventoryItem
	for _, row := range r.vehicles {
		if row.ClassificationID == classificationID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) UpdateVehicle(_ context.Context, row *models.InventoryItem) (int64, error) {
	if _, ok := r.vehicles[row.ID]; !ok {
		return 0, nil
	}
	r.vehicles[row.ID] = row
	return 1, nil
}

func (r *stubInventoryRepo) DeleteVehicle(_ context.Context, id uint) (int64, error) {
	if _, ok := r.vehicles[id]; !ok {
		return 0, nil
	}
	delete(r.vehicles, id)
	return 1, nil
}

func newInventoryService(t *testing.T, repo *stubInventoryRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateClassificationRejectsDuplicateName(t *testing.T) {
	repo := newStubInventoryRepo()
	repo.addClassification("SUV")
	svc := newInventoryService(t, repo)

	_, err := svc.CreateClassification(context.Background(), ClassificationInput{Name: "SUV"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.createClassCnt != 0 {
		t.Fatalf("duplicate classification must not reach the store")
	}
}

func TestCreateVehicleAppliesPlaceholderArt(t *testing.T) {
	repo := newStubInventoryRepo()
	suv := repo.addClassification("SUV")
	svc := newInventoryService(t, repo)

	vehicle, err := svc.CreateVehicle(context.Background(), VehicleInput{
		ClassificationID: suv.ID,
		Make:             "Jeep",
		Model:            "Wrangler",
		Description:      "Trail ready.",
		Price:            2500000,
		Year:             2021,
		Miles:            12000,
		Color:            "Silver",
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if vehicle.ImagePath != defaultImagePath || vehicle.ThumbnailPath != defaultThumbnailPath {
		t.Fatalf("expected placeholder art, got %q / %q", vehicle.ImagePath, vehicle.ThumbnailPath)
	}
	if vehicle.ClassificationName != "SUV" {
		t.Fatalf("expected resolved classification name, got %q", vehicle.ClassificationName)
	}
}

func TestCreateVehicleRequiresExistingClassification(t *testing.T) {
	svc := newInventoryService(t, newStubInventoryRepo())

	_, err := svc.CreateVehicle(context.Background(), VehicleInput{
		ClassificationID: 42,
		Make:             "Jeep",
		Model:            "Wrangler",
	})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListByClassificationEmptyIsNotAnError(t *testing.T) {
	repo := newStubInventoryRepo()
	suv := repo.addClassification("SUV")
	svc := newInventoryService(t, repo)

	classification, vehicles, err := svc.ListByClassification(context.Background(), suv.ID)
	if err != nil {
		t.Fatalf("empty classification should list cleanly: %v", err)
	}
	if classification.Name != "SUV" {
		t.Fatalf("unexpected classification %+v", classification)
	}
	if vehicles == nil || len(vehicles) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", vehicles)
	}
}

func TestListByClassificationUnknownID(t *testing.T) {
	svc := newInventoryService(t, newStubInventoryRepo())

	_, _, err := svc.ListByClassification(context.Background(), 42)
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateVehicleMissingRow(t *testing.T) {
	repo := newStubInventoryRepo()
	suv := repo.addClassification("SUV")
	svc := newInventoryService(t, repo)

	_, err := svc.UpdateVehicle(context.Background(), VehicleUpdateInput{
		ID: 77,
		VehicleInput: VehicleInput{
			ClassificationID: suv.ID,
			Make:             "Jeep",
			Model:            "Wrangler",
		},
	})
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteVehicleMissingRow(t *testing.T) {
	svc := newInventoryService(t, newStubInventoryRepo())

	err := svc.DeleteVehicle(context.Background(), 77)
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
