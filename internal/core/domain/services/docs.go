// Package services provides domain services of the pharmacy order system:
// business operations that span the order aggregate, the medicine catalog and
// the acting user, and so do not belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: the injectable decision point for who may do what
//   - RoleAccessPolicy: the default policy based on actor roles
//   - StatusTransitionService: applies status/payment changes and cancellations,
//     moving medicine stock and producing the history entry
//
// Services never touch persistence; command handlers load aggregates, call a
// service and persist what it changed inside one unit of work.
package services
