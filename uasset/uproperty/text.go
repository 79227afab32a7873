package uproperty

import (
	"fmt"

	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type TextHistoryType int8

const (
	TextHistoryNone             TextHistoryType = -1
	TextHistoryBase             TextHistoryType = 0
	TextHistoryStringTableEntry TextHistoryType = 11
)

type TextProperty struct {
	Header
	Flags       uint32          `json:"flags"`
	HistoryType TextHistoryType `json:"history_type"`
	// CultureInvariantString is nil when a history-less text carries none.
	CultureInvariantString *string     `json:"culture_invariant_string,omitempty"`
	Namespace              string      `json:"namespace"`
	Value                  string      `json:"value"`
	TableID                *uname.Name `json:"table_id,omitempty"`
}

func (p *TextProperty) TypeName() string { return "TextProperty" }

func (p *TextProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}

	if !r.AtLeast(uversion.VerFTextHistory) {
		cultureInvariant, err := r.ReadFString()
		if err != nil {
			return err
		}
		p.CultureInvariantString = &cultureInvariant
		if r.AtLeast(uversion.VerAddedNamespaceAndKeyDataToFText) {
			if p.Namespace, err = r.ReadFString(); err != nil {
				return err
			}
		}
		if p.Value, err = r.ReadFString(); err != nil {
			return err
		}
	}

	if p.Flags, err = r.ReadU32(); err != nil {
		return err
	}
	if !r.AtLeast(uversion.VerFTextHistory) {
		return nil
	}

	historyType, err := r.ReadI8()
	if err != nil {
		return err
	}
	p.HistoryType = TextHistoryType(historyType)
	switch p.HistoryType {
	case TextHistoryNone:
		if r.CustomVersion(uversion.EditorObjectVersion) < uversion.EditorCultureInvariantTextSerializationKeyStability {
			return nil
		}
		hasCultureInvariant, err := r.ReadBool32()
		if err != nil || !hasCultureInvariant {
			return err
		}
		cultureInvariant, err := r.ReadFString()
		if err != nil {
			return err
		}
		p.CultureInvariantString = &cultureInvariant
		return nil
	case TextHistoryBase:
		if p.Namespace, err = r.ReadFString(); err != nil {
			return err
		}
		if p.Value, err = r.ReadFString(); err != nil {
			return err
		}
		cultureInvariant, err := r.ReadFString()
		if err != nil {
			return err
		}
		p.CultureInvariantString = &cultureInvariant
		return nil
	case TextHistoryStringTableEntry:
		tableID, err := r.ReadFName()
		if err != nil {
			return err
		}
		p.TableID = &tableID
		p.Value, err = r.ReadFString()
		return err
	default:
		return uerr.ErrInvalidFile{Reason: fmt.Sprintf("unsupported text history type %d", historyType)}
	}
}

func (p *TextProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		cultureInvariant := ""
		if p.CultureInvariantString != nil {
			cultureInvariant = *p.CultureInvariantString
		}

		if !w.AtLeast(uversion.VerFTextHistory) {
			if err := w.WriteFString(cultureInvariant); err != nil {
				return err
			}
			if w.AtLeast(uversion.VerAddedNamespaceAndKeyDataToFText) {
				if err := w.WriteFString(p.Namespace); err != nil {
					return err
				}
			}
			if err := w.WriteFString(p.Value); err != nil {
				return err
			}
		}

		if err := w.WriteU32(p.Flags); err != nil {
			return err
		}
		if !w.AtLeast(uversion.VerFTextHistory) {
			return nil
		}

		if err := w.WriteI8(int8(p.HistoryType)); err != nil {
			return err
		}
		switch p.HistoryType {
		case TextHistoryNone:
			if w.CustomVersion(uversion.EditorObjectVersion) < uversion.EditorCultureInvariantTextSerializationKeyStability {
				return nil
			}
			if err := w.WriteBool32(p.CultureInvariantString != nil); err != nil || p.CultureInvariantString == nil {
				return err
			}
			return w.WriteFString(cultureInvariant)
		case TextHistoryBase:
			if err := w.WriteFString(p.Namespace); err != nil {
				return err
			}
			if err := w.WriteFString(p.Value); err != nil {
				return err
			}
			return w.WriteFString(cultureInvariant)
		case TextHistoryStringTableEntry:
			if p.TableID == nil {
				return uerr.ErrNoData{Reason: "string table text without a table id"}
			}
			if err := w.WriteFName(*p.TableID); err != nil {
				return err
			}
			return w.WriteFString(p.Value)
		default:
			return uerr.ErrInvalidFile{Reason: fmt.Sprintf("unsupported text history type %d", p.HistoryType)}
		}
	})
}
