// Package queries contains the read side: order lists, order details,
// dashboard figures and the medicine catalog. Handlers read the tables
// directly and return read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"strings"
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

// PageSize is the number of orders per list page.
const PageSize = 20

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows an order list. Empty fields do not filter.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	MedicineID    string
	Search        string
}

// ListOrdersQuery asks for one page of orders visible to the requester,
// newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(requester, OrderFilter{Status: "pending", Search: "smith"}, 2)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	requester     actor.Actor
	status        *order.Status
	paymentStatus *order.PaymentStatus
	medicineID    *kernel.UUID
	search        string
	page          int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses filter. Unknown status codes wrap
// order.ErrInvalidStatus; page numbers below 1 are read as 1.
func NewListOrdersQuery(requester actor.Actor, filter OrderFilter, page int) (ListOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	query := ListOrdersQuery{
		requester: requester,
		search:    strings.TrimSpace(filter.Search),
		page:      max(page, 1),
		guard:     guard.NewConstructorGuard(),
	}

	if code := strings.TrimSpace(filter.Status); code != "" {
		status, err := order.StatusFromCode(code)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = &status
	}
	if code := strings.TrimSpace(filter.PaymentStatus); code != "" {
		paymentStatus, err := order.PaymentStatusFromCode(code)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.paymentStatus = &paymentStatus
	}
	if raw := strings.TrimSpace(filter.MedicineID); raw != "" {
		medicineID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("medicine_id", err)
		}
		query.medicineID = &medicineID
	}

	return query, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID            kernel.UUID
	Number        string
	SalesRepID    kernel.UUID
	CustomerName  string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Total         kernel.Money
	ItemCount     int
	CreatedAt     time.Time
}

// ListOrdersQueryResponse is one page of orders plus paging totals.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummary
	Page       int
	PageSize   int
	TotalCount int64
	TotalPages int
}
