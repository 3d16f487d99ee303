package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through orders. Sales representatives only
// ever see the orders they created.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) (*ListOrdersQueryHandler, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &ListOrdersQueryHandler{db: db, policy: policy}, nil
}

type orderSummaryRow struct {
	ID            uuid.UUID
	Number        string
	SalesRepID    uuid.UUID
	CustomerName  string
	Status        string
	PaymentStatus string
	Total         decimal.Decimal
	ItemCount     int
	CreatedAt     time.Time
}

// Handle returns the requested page ordered by created_at DESC, id DESC.
// A page past the end is empty, not an error.
func (h *ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var rows []orderSummaryRow
	err := h.filtered(ctx, query).
		Select(`o.id, o.number, o.sales_rep_id, o.customer_name, o.status, o.payment_status, o.total, o.created_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count`).
		Order("o.created_at DESC, o.id DESC").
		Limit(PageSize).
		Offset((query.page - 1) * PageSize).
		Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summary, mapErr := row.toReadModel()
		if mapErr != nil {
			return ListOrdersQueryResponse{}, mapErr
		}
		summaries = append(summaries, summary)
	}

	return ListOrdersQueryResponse{
		Orders:     summaries,
		Page:       query.page,
		PageSize:   PageSize,
		TotalCount: total,
		TotalPages: int((total + PageSize - 1) / PageSize),
	}, nil
}

// filtered builds a fresh statement each call; gorm statements that ran a
// Count cannot be reused for the page select.
func (h *ListOrdersQueryHandler) filtered(ctx context.Context, query ListOrdersQuery) *gorm.DB {
	db := h.db.WithContext(ctx).Table("orders AS o")

	if !h.policy.CanViewAllOrders(query.requester) {
		db = db.Where("o.sales_rep_id = ?", query.requester.ID().Bytes())
	}
	if query.status != nil {
		db = db.Where("o.status = ?", query.status.Code())
	}
	if query.paymentStatus != nil {
		db = db.Where("o.payment_status = ?", query.paymentStatus.Code())
	}
	if query.medicineID != nil {
		db = db.Where("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.medicine_id = ?)",
			query.medicineID.Bytes())
	}
	if query.search != "" {
		pattern := "%" + escapeLike(query.search) + "%"
		db = db.Where("(o.number ILIKE ? OR o.customer_name ILIKE ?)", pattern, pattern)
	}
	return db
}

func (row orderSummaryRow) toReadModel() (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	salesRepID, err := kernel.UUIDFromBytes(row.SalesRepID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	status, err := order.StatusFromCode(row.Status)
	if err != nil {
		return OrderSummary{}, err
	}
	paymentStatus, err := order.PaymentStatusFromCode(row.PaymentStatus)
	if err != nil {
		return OrderSummary{}, err
	}
	total, err := kernel.NewMoney(row.Total)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:            id,
		Number:        row.Number,
		SalesRepID:    salesRepID,
		CustomerName:  row.CustomerName,
		Status:        status,
		PaymentStatus: paymentStatus,
		Total:         total,
		ItemCount:     row.ItemCount,
		CreatedAt:     row.CreatedAt,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
