package order

import "fulfillment/internal/pkg/errs"

// Type distinguishes regular orders from preorders of not-yet-stocked goods.
// Both follow the same lifecycle; the type only affects downstream planning.
type Type int

const (
	// TypeUnknown catches uninitialized values.
	TypeUnknown Type = iota

	// TypeNormal is a regular order of stocked goods.
	TypeNormal

	// TypePreorder is an order placed before the goods are in stock.
	TypePreorder
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "unknown",
		TypeNormal:   "normal",
		TypePreorder: "preorder",
	}
}

// TypeFromString parses a persisted order type name.
func TypeFromString(s string) (Type, error) {
	for t, name := range typeStrings() {
		if name == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("order type " + s)
}

// String returns the lowercase name of the order type.
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the order type is one of the defined values.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}
