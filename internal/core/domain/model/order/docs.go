// Package order provides the Order aggregate of the pharmacy order service:
// the order record, its line items and its append-only status history.
//
// The package includes:
//   - Order: aggregate root owning items and driving the status lifecycle
//   - Item: a medicine line with a unit price snapshot taken at creation
//   - HistoryEntry: immutable record of one status/payment change
//   - Status, PaymentStatus: enumerations with validation and codes
//   - Pricing: subtotal, tax, shipping and total computation
//
// Key business rules:
//   - An order holds between 1 and MaxItems items, each for a distinct medicine
//   - New orders start Pending and Unpaid
//   - Delivered and Cancelled are terminal: the status can no longer change,
//     although the payment status may (refunds)
//   - Every successful status change yields exactly one HistoryEntry,
//     including resubmission of the current status
package order
