package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice = errors.New("invalid price value")
)

type CreateServiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type CreatePackageRequest struct {
	Name             string `json:"name" binding:"required"`
	ServiceID        string `json:"service_id" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required"`
	PromotionalPrice string `json:"promotional_price" binding:"required"`
}

type AssignPackageRequest struct {
	TutorID string `json:"tutor_id" binding:"required"`
}

// ResolvePrice parses a decimal price string. Prices are strings on the wire
// so values like "49.90" survive exactly.
func ResolvePrice(raw string) (decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	return d, nil
}

func (r CreateServiceRequest) ResolvePrice() (decimal.Decimal, error) {
	return ResolvePrice(r.Price)
}

func (r CreatePackageRequest) ResolvePromotionalPrice() (decimal.Decimal, error) {
	return ResolvePrice(r.PromotionalPrice)
}
