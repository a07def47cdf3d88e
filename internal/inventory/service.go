package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/motormart/motormart-backend/pkg/db"
	"github.com/motormart/motormart-backend/pkg/db/models"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
	"gorm.io/gorm"
)

// Placeholder art used when a vehicle is added without photos.
const (
	defaultImagePath     = "/images/vehicles/no-image.png"
	defaultThumbnailPath = "/images/vehicles/no-image-tn.png"
)

// Service defines the inventory behaviors needed by the controllers.
type Service interface {
	ListClassifications(ctx context.Context) ([]Classification, error)
	CreateClassification(ctx context.Context, input ClassificationInput) (*Classification, error)
	ClassificationNameExists(ctx context.Context, name string) (bool, error)
	ClassificationExists(ctx context.Context, id uint) (bool, error)
	ListByClassification(ctx context.Context, classificationID uint) (*Classification, []Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*Vehicle, error)
	CreateVehicle(ctx context.Context, input VehicleInput) (*Vehicle, error)
	UpdateVehicle(ctx context.Context, input VehicleUpdateInput) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error
}

type inventoryRepository interface {
	ListClassifications(ctx context.Context) ([]*models.Classification, error)
	FindClassificationByID(ctx context.Context, id uint) (*models.Classification, error)
	CreateClassification(ctx context.Context, row *models.Classification) (*models.Classification, error)
	ClassificationNameExists(ctx context.Context, name string) (bool, error)
	ClassificationExists(ctx context.Context, id uint) (bool, error)
	CreateVehicle(ctx context.Context, row *models.InventoryItem) (*models.InventoryItem, error)
	FindVehicleByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	ListVehiclesByClassification(ctx context.Context, classificationID uint) ([]*models.InventoryItem, error)
	UpdateVehicle(ctx context.Context, row *models.InventoryItem) (int64, error)
	DeleteVehicle(ctx context.Context, id uint) (int64, error)
}

type service struct {
	repo inventoryRepository
}

// NewService constructs the inventory service.
func NewService(repo inventoryRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListClassifications(ctx context.Context) ([]Classification, error) {
	rows, err := s.repo.ListClassifications(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list classifications")
	}
	out := make([]Classification, 0, len(rows))
	for _, row := range rows {
		out = append(out, classificationFromModel(row))
	}
	return out, nil
}

func (s *service) CreateClassification(ctx context.Context, input ClassificationInput) (*Classification, error) {
	name := strings.TrimSpace(input.Name)

	taken, err := s.repo.ClassificationNameExists(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check classification name")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "That classification already exists.")
	}

	row, err := s.repo.CreateClassification(ctx, &models.Classification{Name: name})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "That classification already exists.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create classification")
	}

	out := classificationFromModel(row)
	return &out, nil
}

func (s *service) ClassificationNameExists(ctx context.Context, name string) (bool, error) {
	return s.repo.ClassificationNameExists(ctx, strings.TrimSpace(name))
}

func (s *service) ClassificationExists(ctx context.Context, id uint) (bool, error) {
	return s.repo.ClassificationExists(ctx, id)
}

// ListByClassification resolves the classification first so listing pages
// can 404 on a bad id. An existing classification with zero vehicles is a
// normal empty listing, not an error.
func (s *service) ListByClassification(ctx context.Context, classificationID uint) (*Classification, []Vehicle, error) {
	row, err := s.repo.FindClassificationByID(ctx, classificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "classification not found")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup classification")
	}

	items, err := s.repo.ListVehiclesByClassification(ctx, classificationID)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vehicles")
	}

	vehicles := make([]Vehicle, 0, len(items))
	for _, item := range items {
		vehicles = append(vehicles, vehicleFromModel(item))
	}

	classification := classificationFromModel(row)
	return &classification, vehicles, nil
}

func (s *service) GetVehicle(ctx context.Context, id uint) (*Vehicle, error) {
	item, err := s.repo.FindVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup vehicle")
	}
	vehicle := vehicleFromModel(item)
	return &vehicle, nil
}

func (s *service) CreateVehicle(ctx context.Context, input VehicleInput) (*Vehicle, error) {
	if err := s.requireClassification(ctx, input.ClassificationID); err != nil {
		return nil, err
	}

	item, err := s.repo.CreateVehicle(ctx, modelFromInput(0, input))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create vehicle")
	}
	return s.GetVehicle(ctx, item.ID)
}

func (s *service) UpdateVehicle(ctx context.Context, input VehicleUpdateInput) (*Vehicle, error) {
	if err := s.requireClassification(ctx, input.ClassificationID); err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateVehicle(ctx, modelFromInput(input.ID, input.VehicleInput))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update vehicle")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	return s.GetVehicle(ctx, input.ID)
}

func (s *service) DeleteVehicle(ctx context.Context, id uint) error {
	rows, err := s.repo.DeleteVehicle(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete vehicle")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	return nil
}

func (s *service) requireClassification(ctx context.Context, id uint) error {
	ok, err := s.repo.ClassificationExists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check classification")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "Please choose a valid classification.")
	}
	return nil
}

func modelFromInput(id uint, input VehicleInput) *models.InventoryItem {
	image := strings.TrimSpace(input.ImagePath)
	if image == "" {
		image = defaultImagePath
	}
	thumb := strings.TrimSpace(input.ThumbnailPath)
	if thumb == "" {
		thumb = defaultThumbnailPath
	}
	return &models.InventoryItem{
		ID:               id,
		ClassificationID: input.ClassificationID,
		Make:             strings.TrimSpace(input.Make),
		Model:            strings.TrimSpace(input.Model),
		Description:      strings.TrimSpace(input.Description),
		ImagePath:        image,
		ThumbnailPath:    thumb,
		Price:            input.Price,
		Year:             input.Year,
		Miles:            input.Miles,
		Color:            strings.TrimSpace(input.Color),
	}
}
