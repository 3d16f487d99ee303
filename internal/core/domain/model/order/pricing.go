package order

import (
	"fmt"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultTaxRate     = "0.08"
	DefaultDeliveryFee = "10.00"
)

// Totals is the price breakdown of an order.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}

// Pricing computes order totals from items and the delivery method.
type Pricing struct {
	taxRate     decimal.Decimal
	deliveryFee kernel.Money
}

// NewPricing accepts a tax rate in [0, 1] and a constructed delivery fee.
func NewPricing(taxRate decimal.Decimal, deliveryFee kernel.Money) (Pricing, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return Pricing{}, errs.NewValueIsOutOfRangeError("tax rate", taxRate.String(), 0, 1)
	}
	if err := deliveryFee.Validate(); err != nil {
		return Pricing{}, fmt.Errorf("delivery fee: %w", err)
	}
	return Pricing{taxRate: taxRate, deliveryFee: deliveryFee}, nil
}

// DefaultPricing is 8% tax and a 10.00 delivery fee.
func DefaultPricing() Pricing {
	return Pricing{
		taxRate:     decimal.RequireFromString(DefaultTaxRate),
		deliveryFee: kernel.MustMoney(DefaultDeliveryFee),
	}
}

func (p Pricing) TaxRate() decimal.Decimal {
	return p.taxRate
}

func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// Quote prices items for the given delivery method. No discounts are
// granted, so Discount is always zero.
func (p Pricing) Quote(items []*Item, method DeliveryMethod) Totals {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice())
	}

	shipping := kernel.ZeroMoney()
	if method == HomeDelivery {
		shipping = p.deliveryFee
	}

	tax := subtotal.Rate(p.taxRate)
	discount := kernel.ZeroMoney()

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}
