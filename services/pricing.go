package services

import (
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the price breakdown of a stay or a coupon application.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// PercentOff applies percentage to amount. The discount is rounded to two
// decimals and the total never drops below zero.
func PercentOff(amount, percentage float64) Quote {
	subtotal := decimal.NewFromFloat(amount).Round(2)
	discount := subtotal.Mul(decimal.NewFromFloat(percentage)).Div(hundred).Round(2)
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return Quote{
		Subtotal: subtotal.InexactFloat64(),
		Discount: discount.InexactFloat64(),
		Total:    subtotal.Sub(discount).InexactFloat64(),
	}
}

// StaySubtotal is the sum of each room's nightly price times nights.
func StaySubtotal(rooms []models.Room, nights int) float64 {
	sum := decimal.Zero
	n := decimal.NewFromInt(int64(nights))
	for _, r := range rooms {
		sum = sum.Add(decimal.NewFromFloat(r.Price).Mul(n))
	}
	return sum.Round(2).InexactFloat64()
}
