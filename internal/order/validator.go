package order

import (
	"github.com/andreasstove999/ecommerce-system/ordertool/internal/payload"
)

const msgValid = "Order is valid"

// Validator decides whether a decoded order can be trusted for calculation.
type Validator struct {
	calc *Calculator
}

func NewValidator(calc *Calculator) *Validator {
	return &Validator{calc: calc}
}

// Validate runs the structural check (items, then customerId), parses the
// items and requires a subtotal strictly greater than zero.
func (v *Validator) Validate(doc payload.Document) (Validation, error) {
	if err := checkStructure(doc); err != nil {
		return invalid(err), err
	}

	o, err := FromDocument(doc)
	if err != nil {
		return invalid(err), err
	}

	if !v.calc.Subtotal(o.Items).IsPositive() {
		err := &Error{Kind: KindNonPositiveTotal, Message: msgNonPositiveTotal}
		return invalid(err), err
	}

	return Validation{Valid: true, Message: msgValid}, nil
}

func checkStructure(doc payload.Document) error {
	if !doc.HasItems {
		return missingField(payload.FieldItems, msgMissingItems)
	}
	if !doc.HasCustomerID {
		return missingField(payload.FieldCustomerID, msgMissingCustomerID)
	}
	return nil
}

func invalid(err error) Validation {
	return Validation{Valid: false, Message: err.Error()}
}
