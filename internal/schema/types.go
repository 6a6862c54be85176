// Package schema describes the columns of a data grid: their names,
// semantic types and editability, and the ordered list that holds them.
package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the semantic type of a column. It drives value validation.
type ColumnType int

const (
	// TypeString accepts anything.
	TypeString ColumnType = iota
	// TypeInt holds integers.
	TypeInt
	// TypeFloat holds any numeric value.
	TypeFloat
	// TypeRequiredString must not be empty.
	TypeRequiredString
	// TypeDate holds a single date.
	TypeDate
	// TypeDateRange holds a date or a range of dates.
	TypeDateRange
	// TypeYear holds a plausible year number.
	TypeYear
	// TypeMonth holds a month number or a month/season name.
	TypeMonth
	// TypeDay holds a day-of-month number.
	TypeDay
	// TypeURL holds a link; rendered underlined in blue.
	TypeURL
)

var typeNames = map[ColumnType]string{
	TypeString:         "str",
	TypeInt:            "int",
	TypeFloat:          "float",
	TypeRequiredString: "required str",
	TypeDate:           "date",
	TypeDateRange:      "date range",
	TypeYear:           "year",
	TypeMonth:          "month",
	TypeDay:            "day",
	TypeURL:            "url",
}

// String returns the canonical name of the type.
func (t ColumnType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// ParseColumnType converts a type name to a ColumnType.
// The empty string is a plain string column.
func ParseColumnType(s string) (ColumnType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeString, nil
	}
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return TypeString, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ColumnType) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Editability says whether cells of a column may be edited.
type Editability int

const (
	// EditableYes columns are always editable.
	EditableYes Editability = iota
	// EditableNo columns are never editable.
	EditableNo
	// EditableMaybe columns are editable only in cells that have been
	// individually allowed.
	EditableMaybe
)

// String returns the lower-case name of the editability.
func (e Editability) String() string {
	switch e {
	case EditableYes:
		return "yes"
	case EditableNo:
		return "no"
	case EditableMaybe:
		return "maybe"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// ParseEditability converts "yes", "no" or "maybe" (any case) to an Editability.
// The empty string means yes.
func ParseEditability(s string) (Editability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes":
		return EditableYes, nil
	case "no":
		return EditableNo, nil
	case "maybe":
		return EditableMaybe, nil
	}
	return EditableYes, fmt.Errorf("%w: %q", ErrUnknownEditability, s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Editability) MarshalText() ([]byte, error) {
	if e < EditableYes || e > EditableMaybe {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEditability, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Editability) UnmarshalText(text []byte) error {
	parsed, err := ParseEditability(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
