package uname

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/uhash"
)

func NewTable() *Table {
	return &Table{
		entries: []Entry{},
		byValue: map[string]int32{},
	}
}

func (t *Table) intern(content string, force bool) int32 {
	if !force {
		if index, ok := t.byValue[content]; ok {
			return index
		}
	}
	index := int32(len(t.entries))
	t.entries = append(t.entries, Entry{Content: content})
	if _, ok := t.byValue[content]; !ok {
		t.byValue[content] = index
	}
	return index
}

// Intern returns the index of content, adding it when absent.
func (t *Table) Intern(content string) int32 {
	defer t.borrow.exclusive("Intern")()
	return t.intern(content, false)
}

// ForceIntern always adds a new slot, even when content already exists.
func (t *Table) ForceIntern(content string) int32 {
	defer t.borrow.exclusive("ForceIntern")()
	return t.intern(content, true)
}

// SetHash records an explicit hash for every slot holding content.
func (t *Table) SetHash(content string, hash uint32) {
	defer t.borrow.exclusive("SetHash")()
	for i := range t.entries {
		if t.entries[i].Content == content {
			value := hash
			t.entries[i].Hash = &value
		}
	}
}

func (t *Table) resolve(index int32) (string, error) {
	if index < 0 || int(index) >= len(t.entries) {
		return "", errors.Errorf("uname.Table.Resolve error: index %d outside name table of %d entries", index, len(t.entries))
	}
	return t.entries[index].Content, nil
}

func (t *Table) Resolve(index int32) (string, error) {
	defer t.borrow.shared("Resolve")()
	return t.resolve(index)
}

func (t *Table) IndexOf(content string) (int32, bool) {
	defer t.borrow.shared("IndexOf")()
	index, ok := t.byValue[content]
	return index, ok
}

func (t *Table) Len() int {
	defer t.borrow.shared("Len")()
	return len(t.entries)
}

// Entries returns a copy of the slots in insertion order.
func (t *Table) Entries() []Entry {
	defer t.borrow.shared("Entries")()
	return lo.Map(t.entries, func(entry Entry, _ int) Entry { return entry })
}

// Hash returns the explicit hash of the slot or the computed one.
func (t *Table) Hash(index int32) (uint32, error) {
	defer t.borrow.shared("Hash")()
	content, err := t.resolve(index)
	if err != nil {
		return 0, err
	}
	if hash := t.entries[index].Hash; hash != nil {
		return *hash, nil
	}
	return uhash.HashName(content), nil
}

// Name interns content and returns a handle with number 0.
func (t *Table) Name(content string) Name {
	return Name{table: t, Index: t.Intern(content)}
}

// NameAt builds a handle for an index read from a stream.
func (t *Table) NameAt(index int32, number int32) (Name, error) {
	defer t.borrow.shared("NameAt")()
	if _, err := t.resolve(index); err != nil {
		return Name{}, err
	}
	return Name{table: t, Index: index, Number: number}, nil
}

// View runs fn with a shared borrow held. Mutating the table inside fn panics.
func (t *Table) View(fn func(v View)) {
	defer t.borrow.shared("View")()
	fn(View{table: t})
}

// Edit runs fn with the exclusive borrow held. Any other access to the table
// inside fn panics; use the Editor instead.
func (t *Table) Edit(fn func(e Editor)) {
	defer t.borrow.exclusive("Edit")()
	fn(Editor{table: t})
}

func (v View) Resolve(index int32) (string, error) {
	return v.table.resolve(index)
}

func (v View) Len() int {
	return len(v.table.entries)
}

// Editor is the mutable access handed out by Table.Edit.
type Editor struct {
	table *Table
}

func (e Editor) Intern(content string) int32 {
	return e.table.intern(content, false)
}

func (e Editor) ForceIntern(content string) int32 {
	return e.table.intern(content, true)
}
