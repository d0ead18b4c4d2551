package response

import (
	"time"

	"petslove_booking/internal/domain/entities"
)

type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price.String(),
		CreatedAt: s.CreatedAt,
	}
}

func FromServices(items []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromService(s))
	}
	return out
}

type PackageResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ServiceID        string    `json:"service_id"`
	Quantity         int       `json:"quantity"`
	PromotionalPrice string    `json:"promotional_price"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromPackage(p entities.GroomingPackage) PackageResponse {
	return PackageResponse{
		ID:               p.ID,
		Name:             p.Name,
		ServiceID:        p.ServiceID,
		Quantity:         p.Quantity,
		PromotionalPrice: p.PromotionalPrice.String(),
		CreatedAt:        p.CreatedAt,
	}
}

func FromPackages(items []entities.GroomingPackage) []PackageResponse {
	out := make([]PackageResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPackage(p))
	}
	return out
}

type PackageUsageResponse struct {
	PackageID         string `json:"package_id"`
	TutorID           string `json:"tutor_id"`
	ServiceID         string `json:"service_id"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

func FromPackageUsage(u entities.PackageUsage) PackageUsageResponse {
	return PackageUsageResponse{
		PackageID:         u.PackageID,
		TutorID:           u.TutorID,
		ServiceID:         u.ServiceID,
		RemainingQuantity: u.RemainingQuantity,
	}
}

func FromPackageUsages(items []entities.PackageUsage) []PackageUsageResponse {
	out := make([]PackageUsageResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromPackageUsage(u))
	}
	return out
}

type PetResponse struct {
	ID      string `json:"id"`
	TutorID string `json:"tutor_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

func FromPet(p entities.Pet) PetResponse {
	return PetResponse{
		ID:      p.ID,
		TutorID: p.TutorID,
		Name:    p.Name,
		Type:    p.Type,
	}
}

func FromPets(items []entities.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPet(p))
	}
	return out
}

type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	ActorID   string    `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEntry(e entities.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		Action:    e.Action,
		Details:   e.Details,
		ActorID:   e.ActorID,
		CreatedAt: e.CreatedAt,
	}
}

func FromAuditEntries(items []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromAuditEntry(e))
	}
	return out
}
