package journal

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrDuplicateDate is returned when inserting a log for a date that is
// already indexed. Callers must check with FindByDate or use GetOrCreate.
var ErrDuplicateDate = errors.New("journal: date already indexed")

// Index is the set of day logs touched in a session, strictly increasing
// by date.
type Index struct {
	logs []*DayLog
}

func NewIndex() *Index {
	return &Index{}
}

func (x *Index) Len() int {
	return len(x.logs)
}

// Logs returns the logs in date order.
func (x *Index) Logs() []*DayLog {
	out := make([]*DayLog, len(x.logs))
	copy(out, x.logs)
	return out
}

// FindInsertionPoint returns the position a log for date belongs at.
func (x *Index) FindInsertionPoint(date time.Time) int {
	day := Day(date)
	return sort.Search(len(x.logs), func(i int) bool {
		return !x.logs[i].date.Before(day)
	})
}

// FindByDate returns the position of the log for date.
func (x *Index) FindByDate(date time.Time) (int, bool) {
	i := x.FindInsertionPoint(date)
	if i < len(x.logs) && x.logs[i].date.Equal(Day(date)) {
		return i, true
	}
	return i, false
}

// Lookup returns the indexed log for date or nil.
func (x *Index) Lookup(date time.Time) *DayLog {
	if i, ok := x.FindByDate(date); ok {
		return x.logs[i]
	}
	return nil
}

// Insert places l in date order.
func (x *Index) Insert(l *DayLog) error {
	i, found := x.FindByDate(l.date)
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicateDate, l.Title())
	}
	x.logs = append(x.logs, nil)
	copy(x.logs[i+1:], x.logs[i:])
	x.logs[i] = l
	return nil
}

// GetOrCreate returns the log for date, creating and indexing an empty one
// when none exists yet.
func (x *Index) GetOrCreate(date time.Time) *DayLog {
	i, found := x.FindByDate(date)
	if found {
		return x.logs[i]
	}
	l := NewDayLog(date)
	x.logs = append(x.logs, nil)
	copy(x.logs[i+1:], x.logs[i:])
	x.logs[i] = l
	return l
}
