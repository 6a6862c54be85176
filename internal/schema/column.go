package schema

import (
	"encoding/binary"
	"hash/fnv"
)

// DefaultWidth is the minimum display width, in terminal cells, given to a
// new column.
const DefaultWidth = 10

// ColDefinition describes one column of a grid.
type ColDefinition struct {
	// Name is the canonical key used for lookups.
	Name string `json:"name" toml:"name"`
	// PreferredName, when set, is shown in the header instead of Name.
	PreferredName string `json:"preferred,omitempty" toml:"preferred,omitempty"`
	// Width is the minimum display width of the column.
	Width    int         `json:"width" toml:"width"`
	Type     ColumnType  `json:"type" toml:"type"`
	Editable Editability `json:"editable" toml:"editable"`
}

// NewColDefinition returns an editable string column with the default width.
func NewColDefinition(name string) ColDefinition {
	return ColDefinition{
		Name:     name,
		Width:    DefaultWidth,
		Type:     TypeString,
		Editable: EditableYes,
	}
}

// DisplayName returns the preferred name if one is set, otherwise Name.
func (c ColDefinition) DisplayName() string {
	if c.PreferredName != "" {
		return c.PreferredName
	}
	return c.Name
}

// Signature hashes every field of the definition.
func (c ColDefinition) Signature() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.Name))
	h.Write([]byte{0})
	h.Write([]byte(c.PreferredName))
	h.Write([]byte{0})
	var buf [8]byte
	for _, v := range []int{c.Width, int(c.Type), int(c.Editable)} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
