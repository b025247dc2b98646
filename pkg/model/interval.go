package model

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("from must be strictly before to")

// StoragePrecision is the finest time resolution every ledger keeps. BSON dates hold milliseconds.
const StoragePrecision = time.Millisecond

// Interval is a half-open date-time range [From, To). A booking ending at T and another
// starting at T do not overlap.
type Interval struct {
	From time.Time `json:"from" bson:"starts_at"`
	To   time.Time `json:"to" bson:"ends_at"`
}

// NewInterval builds a validated interval.
func NewInterval(from, to time.Time) (Interval, error) {
	iv := Interval{From: from, To: to}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (i Interval) Validate() error {
	if i.From.IsZero() || i.To.IsZero() || !i.From.Before(i.To) {
		return ErrInvalidRange
	}
	return nil
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Overlaps reports whether a and b share any instant. Both must already be valid.
func Overlaps(a, b Interval) bool {
	return a.From.Before(b.To) && b.From.Before(a.To)
}

func (i Interval) Duration() time.Duration {
	return i.To.Sub(i.From)
}

// Stored returns the interval the way ledgers persist it: UTC and truncated to
// StoragePrecision. An interval shorter than the precision collapses and fails validation.
func (i Interval) Stored() (Interval, error) {
	return NewInterval(i.From.UTC().Truncate(StoragePrecision), i.To.UTC().Truncate(StoragePrecision))
}

// UTC returns the interval with both bounds normalised to UTC, the form stored by every ledger.
func (i Interval) UTC() Interval {
	return Interval{From: i.From.UTC(), To: i.To.UTC()}
}
