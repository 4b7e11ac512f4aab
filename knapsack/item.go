package knapsack

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidItem        = errors.New("knapsack: invalid item")
	ErrInfeasibleCapacity = errors.New("knapsack: infeasible capacity")
	ErrTooManyItems       = errors.New("knapsack: too many items")
)

// MaxItems bounds instance size: selections are encoded as bitmasks over
// item IDs, so an instance holds at most 64 items.
const MaxItems = 64

// Item is an immutable value/weight record. ID is the creation index within
// an instance; it orders output vectors and breaks exact dominance ties, and
// never enters value comparisons.
type Item struct {
	Value  float64
	Weight float64
	ID     int
}

// NewItem validates and builds an item. Value and weight must be positive
// finite reals.
func NewItem(value, weight float64, id int) (Item, error) {
	if !(value > 0) || math.IsInf(value, 0) {
		return Item{}, fmt.Errorf("%w: value must be positive, got %v", ErrInvalidItem, value)
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return Item{}, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidItem, weight)
	}
	if id < 0 {
		return Item{}, fmt.Errorf("%w: id must be non-negative, got %d", ErrInvalidItem, id)
	}
	return Item{Value: value, Weight: weight, ID: id}, nil
}

// ItemsFromPairs builds an ordered instance from (value, weight) pairs,
// assigning IDs in input order.
func ItemsFromPairs(pairs [][2]float64) ([]Item, error) {
	if len(pairs) > MaxItems {
		return nil, fmt.Errorf("%w: %d items, at most %d supported", ErrTooManyItems, len(pairs), MaxItems)
	}
	items := make([]Item, 0, len(pairs))
	for i, pair := range pairs {
		item, err := NewItem(pair[0], pair[1], i)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Density is the item's value per unit of weight.
func (i Item) Density() float64 {
	return i.Value / i.Weight
}

// Equal compares value and weight only. Identity (Fingerprint) is a separate
// operation and must never be assumed consistent with Equal: duplicated items
// compare equal but keep distinct fingerprints.
func (i Item) Equal(other Item) bool {
	return i.Value == other.Value && i.Weight == other.Weight
}

// Fingerprint is a cross-run-stable identity for the item: the first 8 bytes
// of a SHA-256 digest over value, weight, and ID.
func (i Item) Fingerprint() uint64 {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], math.Float64bits(i.Value))
	binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(i.Weight))
	binary.BigEndian.PutUint64(buf[16:24], uint64(i.ID))
	sum := sha256.Sum256(buf[:])
	return binary.BigEndian.Uint64(sum[:8])
}

func (i Item) String() string {
	return fmt.Sprintf("(v: %g, w: %g)", i.Value, i.Weight)
}
