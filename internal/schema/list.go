package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/permute"
)

// List is an ordered list of column definitions. Names are matched
// case-insensitively against both Name and PreferredName.
type List struct {
	cols []ColDefinition
}

// NewList returns a list holding defs in order.
func NewList(defs ...ColDefinition) *List {
	l := &List{cols: make([]ColDefinition, 0, len(defs))}
	l.cols = append(l.cols, defs...)
	return l
}

// Len returns the number of columns.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cols)
}

// All returns a copy of the definitions.
func (l *List) All() []ColDefinition {
	out := make([]ColDefinition, l.Len())
	if l != nil {
		copy(out, l.cols)
	}
	return out
}

// Names returns the canonical names in order.
func (l *List) Names() []string {
	names := make([]string, 0, l.Len())
	for _, c := range l.All() {
		names = append(names, c.Name)
	}
	return names
}

// DisplayNames returns the header text of every column in order.
func (l *List) DisplayNames() []string {
	names := make([]string, 0, l.Len())
	for _, c := range l.All() {
		names = append(names, c.DisplayName())
	}
	return names
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return NewList(l.All()...)
}

func matches(c ColDefinition, name string) bool {
	return strings.EqualFold(c.Name, name) || (c.PreferredName != "" && strings.EqualFold(c.PreferredName, name))
}

// Contains reports whether a column is named name.
func (l *List) Contains(name string) bool {
	_, err := l.IndexOf(name)
	return err == nil
}

// IndexOf returns the position of the first column named name.
func (l *List) IndexOf(name string) (int, error) {
	if l != nil {
		for i, c := range l.cols {
			if matches(c, name) {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// ByName returns the column named name. When there is none, a definition
// carrying only the name is returned, so speculative lookups never fail.
func (l *List) ByName(name string) ColDefinition {
	i, err := l.IndexOf(name)
	if err != nil {
		return ColDefinition{Name: name}
	}
	return l.cols[i]
}

// ByPosition returns the column at i.
func (l *List) ByPosition(i int) (ColDefinition, error) {
	if i < 0 || i >= l.Len() {
		return ColDefinition{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, l.Len())
	}
	return l.cols[i], nil
}

// ByRange returns the columns in [lo, hi) as a new list.
func (l *List) ByRange(lo, hi int) (*List, error) {
	if err := l.checkRange(lo, hi); err != nil {
		return nil, err
	}
	return NewList(l.cols[lo:hi]...), nil
}

// SetByName replaces the column named name, or appends def when there is
// none. A blank def.Name is filled in with name.
func (l *List) SetByName(name string, def ColDefinition) error {
	if i, err := l.IndexOf(name); err == nil {
		l.cols[i] = def
		return nil
	}
	if def.Name == "" {
		def.Name = name
	}
	if def.Name != name {
		return fmt.Errorf("%w: %q stored as %q", ErrNameMismatch, def.Name, name)
	}
	l.cols = append(l.cols, def)
	return nil
}

// SetPosition replaces the column at i.
func (l *List) SetPosition(i int, def ColDefinition) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, l.Len())
	}
	l.cols[i] = def
	return nil
}

// SetRange replaces the columns in [lo, hi) with defs.
func (l *List) SetRange(lo, hi int, defs ...ColDefinition) error {
	if err := l.checkRange(lo, hi); err != nil {
		return err
	}
	out := make([]ColDefinition, 0, len(l.cols)-(hi-lo)+len(defs))
	out = append(out, l.cols[:lo]...)
	out = append(out, defs...)
	out = append(out, l.cols[hi:]...)
	l.cols = out
	return nil
}

// Insert inserts defs before position i. An i of -1 or Len() appends.
func (l *List) Insert(i int, defs ...ColDefinition) error {
	if i == -1 {
		i = l.Len()
	}
	if i < 0 || i > l.Len() {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, l.Len())
	}
	return l.SetRange(i, i, defs...)
}

// DeleteByName removes the column named name.
func (l *List) DeleteByName(name string) error {
	i, err := l.IndexOf(name)
	if err != nil {
		return err
	}
	return l.DeletePosition(i)
}

// DeletePosition removes the column at i.
func (l *List) DeletePosition(i int) error {
	return l.DeleteRange(i, i+1)
}

// DeleteRange removes the columns in [lo, hi).
func (l *List) DeleteRange(lo, hi int) error {
	return l.SetRange(lo, hi)
}

// Append adds defs at the end.
func (l *List) Append(defs ...ColDefinition) {
	l.cols = append(l.cols, defs...)
}

// AppendList adds every column of other at the end.
func (l *List) AppendList(other *List) {
	l.Append(other.All()...)
}

// Concat returns a new list holding l followed by other.
func (l *List) Concat(other *List) *List {
	out := l.Clone()
	out.AppendList(other)
	return out
}

// Move relocates count columns starting at index so they begin at target,
// and returns the old-to-new permuter.
func (l *List) Move(index, count, target int) []int {
	var perm []int
	l.cols, perm = permute.BlockMove(l.cols, index, count, target)
	return perm
}

// Signature is an order-sensitive hash of the whole schema.
func (l *List) Signature() uint64 {
	var sum uint64
	for i, c := range l.All() {
		sum += c.Signature() * uint64(i+1)
	}
	return sum
}

func (l *List) checkRange(lo, hi int) error {
	if lo < 0 || hi > l.Len() || lo > hi {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrIndexOutOfRange, lo, hi, l.Len())
	}
	return nil
}

// MarshalJSON encodes the list as an array of definitions.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.All())
}

// UnmarshalJSON decodes an array of definitions.
func (l *List) UnmarshalJSON(data []byte) error {
	var defs []ColDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return err
	}
	l.cols = defs
	return nil
}
