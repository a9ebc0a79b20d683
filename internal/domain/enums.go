package domain

import "strings"

// Length is the rough effort a task needs.
type Length string

// Possible task lengths
const (
	LengthLong   Length = "Long"
	LengthMedium Length = "Medium"
	LengthShort  Length = "Short"
	LengthMicro  Length = "Micro"
)

// Category is the area of life a task belongs to.
type Category string

// Possible task categories
const (
	CategoryWork     Category = "Work"
	CategoryPassions Category = "Passions"
	CategorySelf     Category = "Self"
	CategoryOthers   Category = "Others"
)

// SelectionMode controls how a vacated active slot is refilled.
type SelectionMode string

// Possible selection modes
const (
	ModeCategory SelectionMode = "Category"
	ModeLength   SelectionMode = "Length"
	ModeChaos    SelectionMode = "Chaos"
)

// DefaultSelectionMode is the mode a fresh board starts in.
const DefaultSelectionMode = ModeCategory

// Collection names one of the three places a task can live.
type Collection string

// Collections and dismissal outcomes
const (
	CollectionActive   Collection = "active"
	CollectionHolding  Collection = "holding"
	CollectionDeferred Collection = "deferred"

	// CollectionNone marks a task that left the board, i.e. was resolved.
	CollectionNone Collection = ""
)

var (
	allLengths    = []Length{LengthLong, LengthMedium, LengthShort, LengthMicro}
	allCategories = []Category{CategoryWork, CategoryPassions, CategorySelf, CategoryOthers}
	allModes      = []SelectionMode{ModeCategory, ModeLength, ModeChaos}
)

// AllLengths returns every length in display order.
func AllLengths() []Length {
	return append([]Length(nil), allLengths...)
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return append([]Category(nil), allCategories...)
}

// AllSelectionModes returns every selection mode in display order.
func AllSelectionModes() []SelectionMode {
	return append([]SelectionMode(nil), allModes...)
}

// Valid reports whether l is one of the known lengths.
func (l Length) Valid() bool {
	for _, v := range allLengths {
		if l == v {
			return true
		}
	}
	return false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, v := range allCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Valid reports whether m is one of the known selection modes.
func (m SelectionMode) Valid() bool {
	for _, v := range allModes {
		if m == v {
			return true
		}
	}
	return false
}

// Valid reports whether c names one of the three collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionActive, CollectionHolding, CollectionDeferred:
		return true
	default:
		return false
	}
}

// ParseLength matches s against the known lengths, ignoring case.
func ParseLength(s string) (Length, error) {
	for _, v := range allLengths {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidLength
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, v := range allCategories {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidCategory
}

// ParseSelectionMode matches s against the known selection modes, ignoring case.
func ParseSelectionMode(s string) (SelectionMode, error) {
	for _, v := range allModes {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidSelectionMode
}

// ParseCollection matches s against the three collection names, ignoring case.
func ParseCollection(s string) (Collection, bool) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}
