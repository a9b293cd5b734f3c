package postgres

import (
	"context"

	"gorm.io/gorm"
)

// orderSeqName is the database sequence behind order numbering. It starts at
// 300001 so the first formatted order number reads "300-001", and values are
// never reused: a rolled-back creation burns its number.
const orderSeqName = "order_seq"

// GormSequenceGenerator implements SequenceGenerator on a postgres sequence.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a sequence generator on the given
// connection.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next reserves and returns the next order sequence value.
func (g *GormSequenceGenerator) Next(ctx context.Context) (int64, error) {
	var seq int64
	err := g.db.WithContext(ctx).Raw("SELECT nextval(?)", orderSeqName).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}
