// Package orderrepo persists order aggregates. It maps between the domain
// model and the relational schema: one orders row, one order_items row per
// line, notes denormalized into a jsonb column.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their lowercase names so the rows read naturally in
// ad-hoc queries; the enum round trip happens in toDomain.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq           int64     `gorm:"uniqueIndex"`
	Country       string    `gorm:"type:varchar(2)"`
	OrderType     string
	CustomerName  string
	CustomerEmail string
	Items         []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Totals        TotalsDTO `gorm:"embedded;embeddedPrefix:totals_"`
	Status        string    `gorm:"index"`
	PaymentStatus string

	ConfirmationSentAt *time.Time
	ShippedSentAt      *time.Time
	DeliveredSentAt    *time.Time
	CancelledSentAt    *time.Time
	WeekendHelloSentAt *time.Time

	NeedsWeekendHello bool       `gorm:"index"`
	NextStatusAt      *time.Time `gorm:"index"`
	Notes             []byte     `gorm:"type:jsonb"`
	CreatedAt         time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. Lines are written once at
// order creation and never updated.
type ItemDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	SKU          string `gorm:"column:sku"`
	Quantity     int
	UnitPriceNet int64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// TotalsDTO represents the embedded totals snapshot within the order table.
// The breakdown is stored as recorded at creation and never recomputed.
type TotalsDTO struct {
	SubtotalNet     int64
	ShippingNet     int64
	SurchargesNet   int64
	VATRateBps      int64  `gorm:"column:vat_rate_bps"`
	VATLabel        string `gorm:"column:vat_label"`
	VATAmount       int64  `gorm:"column:vat_amount"`
	TotalGross      int64
	IsReverseCharge bool
}

// noteDTO is the jsonb shape of one internal note.
type noteDTO struct {
	At     time.Time `json:"at"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			Name:         item.Name(),
			SKU:          item.SKU(),
			Quantity:     item.Quantity(),
			UnitPriceNet: item.UnitPriceNet(),
		})
	}

	notes := make([]noteDTO, 0, len(aggregate.Notes()))
	for _, note := range aggregate.Notes() {
		notes = append(notes, noteDTO{At: note.At, Author: note.Author, Text: note.Text})
	}
	rawNotes, err := json.Marshal(notes)
	if err != nil {
		return OrderDTO{}, err
	}

	totals := aggregate.Totals()
	flags := aggregate.EmailFlags()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Seq:           aggregate.Seq(),
		Country:       aggregate.Country().String(),
		OrderType:     aggregate.OrderType().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Items:         items,
		Totals: TotalsDTO{
			SubtotalNet:     totals.SubtotalNet(),
			ShippingNet:     totals.ShippingNet(),
			SurchargesNet:   totals.SurchargesNet(),
			VATRateBps:      totals.VATRateBps(),
			VATLabel:        totals.VATLabel(),
			VATAmount:       totals.VATAmount(),
			TotalGross:      totals.TotalGross(),
			IsReverseCharge: totals.IsReverseCharge(),
		},
		Status:             aggregate.Status().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		ConfirmationSentAt: flags.SentAt(order.NotificationConfirmation),
		ShippedSentAt:      flags.SentAt(order.NotificationShipped),
		DeliveredSentAt:    flags.SentAt(order.NotificationDelivered),
		CancelledSentAt:    flags.SentAt(order.NotificationCancelled),
		WeekendHelloSentAt: flags.SentAt(order.NotificationWeekendHello),
		NeedsWeekendHello:  aggregate.NeedsWeekendHello(),
		NextStatusAt:       aggregate.NextStatusAt(),
		Notes:              rawNotes,
		CreatedAt:          aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, taking the stored state as recorded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	country, err := kernel.CountryFromString(dto.Country)
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(itemDTO.Name, itemDTO.SKU, itemDTO.Quantity, itemDTO.UnitPriceNet)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var noteDTOs []noteDTO
	if len(dto.Notes) > 0 {
		if err = json.Unmarshal(dto.Notes, &noteDTOs); err != nil {
			return nil, err
		}
	}
	notes := make([]order.Note, 0, len(noteDTOs))
	for _, n := range noteDTOs {
		notes = append(notes, order.Note{At: n.At, Author: n.Author, Text: n.Text})
	}

	totals := order.RestoreTotals(
		dto.Totals.SubtotalNet,
		dto.Totals.ShippingNet,
		dto.Totals.SurchargesNet,
		dto.Totals.VATRateBps,
		dto.Totals.VATLabel,
		dto.Totals.VATAmount,
		dto.Totals.TotalGross,
		dto.Totals.IsReverseCharge,
	)

	flags := order.RestoreEmailFlags(
		dto.ConfirmationSentAt,
		dto.ShippedSentAt,
		dto.DeliveredSentAt,
		dto.CancelledSentAt,
		dto.WeekendHelloSentAt,
	)

	return order.RestoreOrder(
		id,
		dto.Seq,
		country,
		orderType,
		dto.CustomerName,
		dto.CustomerEmail,
		items,
		totals,
		status,
		paymentStatus,
		flags,
		dto.NeedsWeekendHello,
		dto.NextStatusAt,
		notes,
		dto.CreatedAt,
	)
}
