package reviews

import (
	"fmt"
	"time"

	"github.com/motormart/motormart-backend/pkg/db/models"
)

// AddInput is the validated add-review payload.
type AddInput struct {
	Text        string
	InventoryID uint
	AccountID   uint
}

// UpdateInput targets an existing review. AccountID is the caller, not
// necessarily the author; the service decides whether they match.
type UpdateInput struct {
	ReviewID  uint
	AccountID uint
	Text      string
}

// Review is the outward review shape with display fields resolved.
type Review struct {
	ID          uint
	Text        string
	InventoryID uint
	AccountID   uint
	ScreenName  string
	VehicleName string
	CreatedAt   time.Time
}

func fromModel(m *models.Review) Review {
	r := Review{
		ID:          m.ID,
		Text:        m.Text,
		InventoryID: m.InventoryID,
		AccountID:   m.AccountID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Account != nil && m.Account.FirstName != "" {
		r.ScreenName = fmt.Sprintf("%s. %s", m.Account.FirstName[:1], m.Account.LastName)
	}
	if m.Inventory != nil {
		r.VehicleName = fmt.Sprintf("%d %s %s", m.Inventory.Year, m.Inventory.Make, m.Inventory.Model)
	}
	return r
}
