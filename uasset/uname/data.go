package uname

type (
	// Entry is one name table slot.
	Entry struct {
		Content string `json:"content"`
		// Hash overrides the computed hash when set.
		Hash *uint32 `json:"hash,omitempty"`
	}
	// Table interns strings in insertion order. It is owned by one container;
	// readers and writers borrow it, and conflicting borrows panic.
	Table struct {
		entries []Entry
		byValue map[string]int32
		borrow  borrowState
	}
	// Name is a handle resolved against a Table, or an unbacked dummy when
	// table is nil.
	Name struct {
		table   *Table
		Index   int32
		Number  int32
		content string
	}
	// View is the read-only access handed out by Table.View.
	View struct {
		table *Table
	}
	borrowState struct {
		readers int32
		writer  int32
	}
)
