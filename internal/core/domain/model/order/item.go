package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. It belongs to exactly one order and is immutable
// once created: name and unit price are captured at order time and stay fixed
// regardless of later catalog changes.
//
// unitPriceNet is in integer minor currency units (cents).
type Item struct {
	name         string
	sku          string
	quantity     int
	unitPriceNet int64

	guard kernel.ConstructorGuard
}

// NewItem creates an order line with a positive quantity and a non-negative
// net unit price.
func NewItem(name, sku string, quantity int, unitPriceNet int64) (Item, error) {
	item := Item{guard: kernel.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setSKU(sku),
		item.setQuantity(quantity),
		item.setUnitPriceNet(unitPriceNet),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the product name captured at order time.
func (i Item) Name() string {
	return i.name
}

// SKU returns the catalog article number captured at order time.
func (i Item) SKU() string {
	return i.sku
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPriceNet returns the net price per unit in cents.
func (i Item) UnitPriceNet() int64 {
	return i.unitPriceNet
}

// LineTotalNet returns quantity times net unit price in cents.
func (i Item) LineTotalNet() int64 {
	return int64(i.quantity) * i.unitPriceNet
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setSKU(sku string) error {
	// SKU is optional; legacy catalog entries have none.
	i.sku = sku
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPriceNet(unitPriceNet int64) error {
	if unitPriceNet < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item unit price",
			fmt.Errorf("%d is negative", unitPriceNet))
	}
	i.unitPriceNet = unitPriceNet
	return nil
}

// RestoreItem reconstructs an item from persistence without re-running
// creation-time validation beyond the structural checks.
func RestoreItem(name, sku string, quantity int, unitPriceNet int64) (Item, error) {
	return NewItem(name, sku, quantity, unitPriceNet)
}
