package social

import "gorm.io/gorm"

// Counter names understood by the registry.
const (
	CounterComments = "comments_count"
	CounterLikes    = "likes_count"
	CounterReplies  = "replies_count"
)

// CounterLedger keeps denormalized counters on content entities in step
// with the rows they summarize. All updates are relative SQL expressions,
// never application-level read-modify-write, so concurrent mutations of
// the same entity stay correct.
//
// Incrementing or decrementing a counter the kind does not declare is a
// no-op, not an error. Callers pass their open transaction so a ledger
// failure rolls back the whole operation.
type CounterLedger struct{}

// Increment raises the named counter by one.
func (l CounterLedger) Increment(tx *gorm.DB, ref ContentRef, name string) error {
	return l.add(tx, ref, name, 1)
}

// Decrement lowers the named counter by one, never below zero.
func (l CounterLedger) Decrement(tx *gorm.DB, ref ContentRef, name string) error {
	return l.subtract(tx, ref, name, 1)
}

func (CounterLedger) add(tx *gorm.DB, ref ContentRef, name string, n int64) error {
	d, ok := Lookup(ref.Kind)
	if !ok || !d.HasCounter(name) {
		return nil
	}
	err := tx.Table(d.Table).Where("id = ?", ref.ID).
		UpdateColumn(name, gorm.Expr(name+" + ?", n)).Error
	if err != nil {
		return persistence(err)
	}
	return nil
}

func (CounterLedger) subtract(tx *gorm.DB, ref ContentRef, name string, n int64) error {
	d, ok := Lookup(ref.Kind)
	if !ok || !d.HasCounter(name) {
		return nil
	}
	// Clamp at zero rather than going negative when the counter has
	// drifted below the number of rows being removed.
	err := tx.Table(d.Table).Where("id = ?", ref.ID).
		UpdateColumn(name, gorm.Expr(
			"CASE WHEN "+name+" > ? THEN "+name+" - ? ELSE 0 END", n, n)).Error
	if err != nil {
		return persistence(err)
	}
	return nil
}
