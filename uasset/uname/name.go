package uname

import (
	"fmt"
)

// Dummy builds a handle that is not backed by any table. Writing it
// requires the content to exist in the target table.
func Dummy(content string) Name {
	return Name{content: content}
}

func (n Name) IsDummy() bool {
	return n.table == nil
}

func (n Name) Table() *Table {
	return n.table
}

// Content resolves the handle. Invalid handles resolve to an empty string.
func (n Name) Content() string {
	if n.table == nil {
		return n.content
	}
	content, err := n.table.Resolve(n.Index)
	if err != nil {
		return ""
	}
	return content
}

// Is compares the content, ignoring the number.
func (n Name) Is(content string) bool {
	return n.Content() == content
}

// Equal holds for handles of the same table, index and number. Dummies
// compare by content and number.
func (n Name) Equal(other Name) bool {
	if n.table == nil || other.table == nil {
		return n.table == other.table && n.content == other.content && n.Number == other.Number
	}
	return n.table == other.table && n.Index == other.Index && n.Number == other.Number
}

// String renders the engine display form, where number n > 0 is a "_(n-1)"
// suffix.
func (n Name) String() string {
	if n.Number > 0 {
		return fmt.Sprintf("%s_%d", n.Content(), n.Number-1)
	}
	return n.Content()
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
