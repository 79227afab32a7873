package uexport

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

// LevelExport lists the actors of a level. The rest of the level payload is
// kept verbatim up to the end of the export.
type LevelExport struct {
	NormalExport
	Actors           []utypes.PackageIndex `json:"actors"`
	Namespace        string                `json:"namespace"`
	FlagsProbably    uint32                `json:"flags_probably"`
	MiscCategoryData []byte                `json:"misc_category_data"`
}

func (e *LevelExport) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := e.NormalExport.read(r, ctx); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}
	if e.Actors, err = readIndexes(r); err != nil {
		return err
	}
	if e.Namespace, err = r.ReadFString(); err != nil {
		return err
	}
	if err := readZero(r); err != nil {
		return err
	}
	if e.FlagsProbably, err = r.ReadU32(); err != nil {
		return err
	}

	// everything but the final zero byte
	miscLength := ctx.End - 1 - r.Position()
	if miscLength < 0 {
		return uerr.ErrInvalidFile{Reason: "level export overruns its serialized range"}
	}
	if e.MiscCategoryData, err = r.ReadBytes(int(miscLength)); err != nil {
		return err
	}
	terminator, err := r.ReadU8()
	if err != nil {
		return err
	}
	if terminator != 0 {
		return uerr.ErrInvalidFile{Reason: "level export does not end with a zero byte"}
	}
	return nil
}

func (e *LevelExport) write(w *uarchive.Writer, ctx Context) error {
	if err := e.NormalExport.write(w, ctx); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := writeIndexes(w, e.Actors); err != nil {
		return err
	}
	if err := w.WriteFString(e.Namespace); err != nil {
		return err
	}
	if err := w.WriteI32(0); err != nil {
		return err
	}
	if err := w.WriteU32(e.FlagsProbably); err != nil {
		return err
	}
	if err := w.WriteBytes(e.MiscCategoryData); err != nil {
		return err
	}
	return w.WriteU8(0)
}
