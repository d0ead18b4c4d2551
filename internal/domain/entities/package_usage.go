package entities

import "strings"

// PackageUsage is the remaining balance of a service a tutor may still
// consume under a promotional package.
//
// Storage model (DynamoDB):
//   - PK: usage_key ("<package_id>#<tutor_id>#<service_id>")
//
// Invariant: RemainingQuantity never goes below zero. The decrement is a
// conditional update (remaining_quantity > 0) inside the same transaction
// as the appointment write, so a lost race surfaces as a cancelled
// transaction, never as a negative balance.
type PackageUsage struct {
	PackageID         string `json:"package_id"`
	TutorID           string `json:"tutor_id"`
	ServiceID         string `json:"service_id"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

// Key returns the composite DynamoDB key for this entry.
func (u PackageUsage) Key() string {
	return UsageKey(u.PackageID, u.TutorID, u.ServiceID)
}

func UsageKey(packageID, tutorID, serviceID string) string {
	return strings.Join([]string{packageID, tutorID, serviceID}, "#")
}
