package order

import (
	"fmt"
	"regexp"
	"strings"

	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
)

var numberPattern = regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

// NewNumber returns a human-facing order number such as "ORD-1A2B3C4D".
// Uniqueness is enforced by the store; callers retry on collision.
func NewNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// ValidateNumber checks the ORD-XXXXXXXX format.
func ValidateNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%q does not match ORD-XXXXXXXX", number),
		)
	}
	return nil
}
