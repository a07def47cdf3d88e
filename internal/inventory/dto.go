package inventory

import "github.com/motormart/motormart-backend/pkg/db/models"

// ClassificationInput is the validated add-classification payload.
type ClassificationInput struct {
	Name string
}

// VehicleInput is the validated add-vehicle payload. Image paths may be
// empty; the service substitutes the placeholder art.
type VehicleInput struct {
	ClassificationID uint
	Make             string
	Model            string
	Description      string
	ImagePath        string
	ThumbnailPath    string
	Price            int64
	Year             int
	Miles            int64
	Color            string
}

// VehicleUpdateInput targets an existing vehicle.
type VehicleUpdateInput struct {
	ID uint
	VehicleInput
}

// Classification is the outward classification shape.
type Classification struct {
	ID   uint
	Name string
}

// Vehicle is the outward vehicle shape, carrying the resolved
// classification name for display.
type Vehicle struct {
	ID                 uint
	ClassificationID   uint
	ClassificationName string
	Make               string
	Model              string
	Description        string
	ImagePath          string
	ThumbnailPath      string
	Price              int64
	Year               int
	Miles              int64
	Color              string
}

func classificationFromModel(m *models.Classification) Classification {
	return Classification{ID: m.ID, Name: m.Name}
}

func vehicleFromModel(m *models.InventoryItem) Vehicle {
	v := Vehicle{
		ID:               m.ID,
		ClassificationID: m.ClassificationID,
		Make:             m.Make,
		Model:            m.Model,
		Description:      m.Description,
		ImagePath:        m.ImagePath,
		ThumbnailPath:    m.ThumbnailPath,
		Price:            m.Price,
		Year:             m.Year,
		Miles:            m.Miles,
		Color:            m.Color,
	}
	if m.Classification != nil {
		v.ClassificationName = m.Classification.Name
	}
	return v
}
