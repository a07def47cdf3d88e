package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/motormart/motormart-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	classifications := `
CREATE TABLE IF NOT EXISTS classifications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE
);`
	inventoryItems := `
CREATE TABLE IF NOT EXISTS inventory_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  classification_id INTEGER NOT NULL,
  make TEXT NOT NULL,
  model TEXT NOT NULL,
  description TEXT NOT NULL,
  image_path TEXT NOT NULL,
  thumbnail_path TEXT NOT NULL,
  price INTEGER NOT NULL,
  year INTEGER NOT NULL,
  miles INTEGER NOT NULL,
  color TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(classifications).Error)
	require.NoError(t, db.Exec(inventoryItems).Error)
	return db
}

func newClassification(t *testing.T, db *gorm.DB, name string) *models.Classification {
	t.Helper()

	row := &models.Classification{Name: name}
	require.NoError(t, db.Create(row).Error)
	return row
}

func newVehicle(t *testing.T, db *gorm.DB, classificationID uint, makeName, modelName string) *models.InventoryItem {
	t.Helper()

	row := &models.InventoryItem{
		ClassificationID: classificationID,
		Make:             makeName,
		Model:            modelName,
		Description:      "test vehicle",
		ImagePath:        "/images/vehicles/no-image.png",
		ThumbnailPath:    "/images/vehicles/no-image-tn.png",
		Price:            2500000,
		Year:             2021,
		Miles:            12000,
		Color:            "Silver",
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestClassificationNameExists(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	newClassification(t, db, "SUV")

	taken, err := repo.ClassificationNameExists(ctx, "SUV")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ClassificationNameExists(ctx, "Sedan")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestListClassificationsOrdered(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	newClassification(t, db, "Truck")
	newClassification(t, db, "Classic")
	newClassification(t, db, "SUV")

	rows, err := repo.ListClassifications(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Classic", rows[0].Name)
	assert.Equal(t, "SUV", rows[1].Name)
	assert.Equal(t, "Truck", rows[2].Name)
}

func TestListVehiclesByClassification(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	suv := newClassification(t, db, "SUV")
	truck := newClassification(t, db, "Truck")
	newVehicle(t, db, suv.ID, "Jeep", "Wrangler")
	newVehicle(t, db, suv.ID, "Ford", "Explorer")
	newVehicle(t, db, truck.ID, "Ford", "F-150")

	rows, err := repo.ListVehiclesByClassification(ctx, suv.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ford", rows[0].Make)
	assert.Equal(t, "Jeep", rows[1].Make)
	require.NotNil(t, rows[0].Classification)
	assert.Equal(t, "SUV", rows[0].Classification.Name)

	rows, err = repo.ListVehiclesByClassification(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindVehicleByIDPreloadsClassification(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	suv := newClassification(t, db, "SUV")
	created := newVehicle(t, db, suv.ID, "Jeep", "Wrangler")

	found, err := repo.FindVehicleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wrangler", found.Model)
	require.NotNil(t, found.Classification)
	assert.Equal(t, "SUV", found.Classification.Name)

	_, err = repo.FindVehicleByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateVehicleReportsRowsAffected(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	suv := newClassification(t, db, "SUV")
	created := newVehicle(t, db, suv.ID, "Jeep", "Wrangler")

	created.Color = "Red"
	created.Price = 2999900
	rows, err := repo.UpdateVehicle(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	reloaded, err := repo.FindVehicleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red", reloaded.Color)
	assert.Equal(t, int64(2999900), reloaded.Price)

	missing := *created
	missing.ID = 999
	rows, err = repo.UpdateVehicle(ctx, &missing)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteVehicleReportsRowsAffected(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	suv := newClassification(t, db, "SUV")
	created := newVehicle(t, db, suv.ID, "Jeep", "Wrangler")

	rows, err := repo.DeleteVehicle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.DeleteVehicle(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
