package domain

import "strconv"

// Record is implemented by every stored record kind.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// FindByID returns the first record whose identifier equals id.
func FindByID[T Record[T]](id string, records []T) (T, bool) {
	for _, record := range records {
		if record.RecordID() == id {
			return record, true
		}
	}

	var zero T
	return zero, false
}

// NextID returns the identifier assigned to a record appended to a
// collection of the given size. Identifiers are sequential indexes and are
// not stable across restarts.
func NextID(size int) string {
	return strconv.Itoa(size)
}
