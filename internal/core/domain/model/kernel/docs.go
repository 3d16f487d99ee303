// Package kernel holds the value objects shared by every aggregate of the
// order management domain:
//   - UUID: identifier of orders, items, medicines, actors and history entries
//   - Money: non-negative currency amount with two-decimal rounding
//
// Both are immutable and reject their zero value in Validate, so a field
// that was never initialised is caught at the aggregate boundary.
package kernel
