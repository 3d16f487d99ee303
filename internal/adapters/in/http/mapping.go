package http

import (
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/generated/servers"
)

func toOrderPage(result queries.ListOrdersQueryResponse) servers.OrderPage {
	orders := make([]servers.OrderSummary, len(result.Orders))
	for i, summary := range result.Orders {
		orders[i] = servers.OrderSummary{
			Id:            summary.ID.Bytes(),
			Number:        summary.Number,
			SalesRepId:    summary.SalesRepID.Bytes(),
			CustomerName:  summary.CustomerName,
			Status:        summary.Status.Code(),
			PaymentStatus: summary.PaymentStatus.Code(),
			Total:         summary.Total.String(),
			ItemCount:     summary.ItemCount,
			CreatedAt:     summary.CreatedAt,
		}
	}

	return servers.OrderPage{
		Orders:     orders,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	}
}

func toOrderDetails(details queries.GetOrderDetailsQueryResponse) servers.OrderDetails {
	items := make([]servers.OrderItem, len(details.Items))
	for i, item := range details.Items {
		items[i] = servers.OrderItem{
			MedicineId:   item.MedicineID.Bytes(),
			MedicineName: item.MedicineName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.String(),
			LineTotal:    item.LineTotal.String(),
		}
	}

	history := make([]servers.HistoryEntry, len(details.History))
	for i, entry := range details.History {
		history[i] = servers.HistoryEntry{
			OldStatus:        entry.OldStatus.Code(),
			NewStatus:        entry.NewStatus.Code(),
			OldPaymentStatus: entry.OldPaymentStatus.Code(),
			NewPaymentStatus: entry.NewPaymentStatus.Code(),
			Note:             entry.Note,
			ActorId:          entry.ActorID.Bytes(),
			ActorUsername:    optional(entry.ActorUsername),
			ChangedAt:        entry.ChangedAt,
		}
	}

	return servers.OrderDetails{
		Id:         details.ID.Bytes(),
		Number:     details.Number,
		SalesRepId: details.SalesRepID.Bytes(),
		Customer: servers.Customer{
			Name:    details.CustomerName,
			Phone:   optional(details.CustomerPhone),
			Address: optional(details.CustomerAddress),
		},
		DeliveryMethod:  details.DeliveryMethod.Code(),
		DeliveryAddress: optional(details.DeliveryAddress),
		CustomerNotes:   optional(details.CustomerNotes),
		Status:          details.Status.Code(),
		PaymentStatus:   details.PaymentStatus.Code(),
		Totals:          toTotals(details.Totals),
		CreatedAt:       details.CreatedAt,
		UpdatedAt:       details.UpdatedAt,
		ShippedAt:       details.ShippedAt,
		DeliveredAt:     details.DeliveredAt,
		Items:           items,
		History:         history,
	}
}

func toTotals(totals order.Totals) servers.Totals {
	return servers.Totals{
		Subtotal: totals.Subtotal.String(),
		Discount: totals.Discount.String(),
		Tax:      totals.Tax.String(),
		Shipping: totals.Shipping.String(),
		Total:    totals.Total.String(),
	}
}

func toDashboardStats(stats queries.DashboardStats) servers.DashboardStats {
	byStatus := make([]servers.StatusCount, len(stats.ByStatus))
	for i, count := range stats.ByStatus {
		byStatus[i] = servers.StatusCount{Status: count.Status, Count: count.Count}
	}

	return servers.DashboardStats{
		TotalOrders:       stats.TotalOrders,
		TodayOrders:       stats.TodayOrders,
		WeekOrders:        stats.WeekOrders,
		UnpaidOrders:      stats.UnpaidOrders,
		ByStatus:          byStatus,
		LowStockMedicines: stats.LowStockMedicines,
		GeneratedAt:       stats.GeneratedAt,
	}
}

func toMedicine(view queries.MedicineView) servers.Medicine {
	return servers.Medicine{
		Id:           view.ID.Bytes(),
		Name:         view.Name,
		UnitPrice:    view.UnitPrice.String(),
		CurrentStock: view.CurrentStock,
		IsActive:     view.IsActive,
	}
}

// optional maps empty strings to absent JSON fields.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
