package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	// Header is shared by every property.
	Header struct {
		Name             uname.Name   `json:"name"`
		PropertyGuid     *utypes.Guid `json:"property_guid,omitempty"`
		DuplicationIndex int32        `json:"duplication_index"`
	}
	// Property is one decoded tagged value. TypeName is the literal type tag
	// the value is serialized with.
	Property interface {
		Base() *Header
		TypeName() string
		read(r *uarchive.Reader, ctx Context) error
		// write returns the payload length that goes into the tag, which
		// excludes the header fields written when includeHeader is set.
		write(w *uarchive.Writer, includeHeader bool) (int64, error)
	}
	// Context is threaded through every decode call.
	Context struct {
		IncludeHeader bool
		Length        int64
		// FallbackLength is tried by codecs whose layout depends on the
		// length when Length does not match any layout.
		FallbackLength int64
		Ancestry       Ancestry
	}
	// Ancestry lists the enclosing types of a nested property, outermost
	// first.
	Ancestry []string
)

const (
	NameNone    = "None"
	TypeGeneric = "Generic"
)

func (h *Header) Base() *Header {
	return h
}

func (h *Header) readGuid(r *uarchive.Reader, includeHeader bool) error {
	if !includeHeader {
		return nil
	}
	guid, err := r.ReadPropertyGuid()
	if err != nil {
		return err
	}
	h.PropertyGuid = guid
	return nil
}

func (h *Header) writeGuid(w *uarchive.Writer, includeHeader bool) error {
	if !includeHeader {
		return nil
	}
	return w.WritePropertyGuid(h.PropertyGuid)
}

func (a Ancestry) With(parent string) Ancestry {
	return append(a[:len(a):len(a)], parent)
}

// Parent returns the innermost enclosing type, or "" at the top level.
func (a Ancestry) Parent() string {
	if len(a) == 0 {
		return ""
	}
	return a[len(a)-1]
}

func measure(w *uarchive.Writer, fn func() error) (int64, error) {
	begin := w.Position()
	if err := fn(); err != nil {
		return 0, err
	}
	return w.Position() - begin, nil
}
