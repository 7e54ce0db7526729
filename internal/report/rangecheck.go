package report

import (
	"fmt"

	"store-ledger/internal/statement"
)

// RangeCheck is the window a report actually ran over. When the requested start
// precedes every tracked opening date, Start is moved up to the earliest one.
type RangeCheck struct {
	RequestedStart  statement.Date `json:"requestedStart"`
	Start           statement.Date `json:"start"`
	End             statement.Date `json:"end"`
	EarliestOpening statement.Date `json:"earliestOpening"`
	Adjusted        bool           `json:"adjusted"`
	Message         string         `json:"message,omitempty"`
}

// CheckRange validates [start, end] against the stores' opening dates.
func CheckRange(start, end statement.Date, stores []statement.Store) (RangeCheck, error) {
	if start.IsZero() || end.IsZero() {
		return RangeCheck{}, fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if end.Before(start) {
		return RangeCheck{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, end, start)
	}

	rc := RangeCheck{RequestedStart: start, Start: start, End: end}
	for _, s := range stores {
		d := s.InitialBalanceDate
		if d.IsZero() {
			continue
		}
		if rc.EarliestOpening.IsZero() || d.Before(rc.EarliestOpening) {
			rc.EarliestOpening = d
		}
	}

	if !rc.EarliestOpening.IsZero() && start.Before(rc.EarliestOpening) && !rc.EarliestOpening.After(end) {
		rc.Start = rc.EarliestOpening
		rc.Adjusted = true
		rc.Message = fmt.Sprintf("开始日期早于最早的门店期初日期，已调整为 %s", rc.EarliestOpening)
	}
	return rc, nil
}
