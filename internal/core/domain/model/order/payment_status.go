package order

import "fmt"

// PaymentStatus tracks settlement of an order independently of fulfilment.
type PaymentStatus int

const (
	UnknownPaymentStatus PaymentStatus = iota
	Unpaid
	Paid
	PaymentFailed
	Refunded
	PartiallyRefunded
)

var paymentStatusCodes = map[PaymentStatus]string{
	Unpaid:            "unpaid",
	Paid:              "paid",
	PaymentFailed:     "failed",
	Refunded:          "refunded",
	PartiallyRefunded: "partially_refunded",
}

var paymentStatusNames = map[PaymentStatus]string{
	Unpaid:            "Unpaid",
	Paid:              "Paid",
	PaymentFailed:     "Failed",
	Refunded:          "Refunded",
	PartiallyRefunded: "Partially Refunded",
}

// PaymentStatuses lists every valid payment status.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{Unpaid, Paid, PaymentFailed, Refunded, PartiallyRefunded}
}

// PaymentStatusFromCode parses a persisted or submitted payment status code.
func PaymentStatusFromCode(code string) (PaymentStatus, error) {
	for p, c := range paymentStatusCodes {
		if c == code {
			return p, nil
		}
	}
	return UnknownPaymentStatus, fmt.Errorf("%w: %q is not a valid payment status", ErrInvalidStatus, code)
}

func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusCodes[p]; !ok {
		return fmt.Errorf("%w: %d is not a valid payment status", ErrInvalidStatus, p)
	}
	return nil
}

func (p PaymentStatus) Code() string {
	if c, ok := paymentStatusCodes[p]; ok {
		return c
	}
	return "unknown"
}

func (p PaymentStatus) String() string {
	if n, ok := paymentStatusNames[p]; ok {
		return n
	}
	return "Unknown"
}
