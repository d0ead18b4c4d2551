package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pet belongs to exactly one tutor. Ownership is checked on every booking
// write, the workflow never trusts a pet id on its own.
type Pet struct {
	ID      string `json:"id"`
	TutorID string `json:"tutor_id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
}

// BelongsTo reports whether the pet is owned by the given tutor.
func (p Pet) BelongsTo(tutorID string) bool {
	return p.TutorID == tutorID
}

// Service is a grooming service offered by the shop.
//
// Monetary representation: decimal, persisted as a string attribute.
type Service struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// GroomingPackage is a promotional bundle: a fixed quantity of one service
// at a reduced aggregate price. Assigning a package to a tutor seeds a
// PackageUsage entry with Quantity remaining uses.
type GroomingPackage struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ServiceID        string          `json:"service_id"`
	Quantity         int             `json:"quantity"`
	PromotionalPrice decimal.Decimal `json:"promotional_price"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PackageTutor is the association row between a package and a tutor.
//
// Storage model (DynamoDB):
//   - PK: association_key ("<package_id>#<tutor_id>")
type PackageTutor struct {
	PackageID  string    `json:"package_id"`
	TutorID    string    `json:"tutor_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

func AssociationKey(packageID, tutorID string) string {
	return packageID + "#" + tutorID
}
