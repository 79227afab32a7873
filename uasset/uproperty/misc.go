package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	RichCurveKeyProperty struct {
		Header
		InterpMode          int8    `json:"interp_mode"`
		TangentMode         int8    `json:"tangent_mode"`
		TangentWeightMode   int8    `json:"tangent_weight_mode"`
		Time                float32 `json:"time"`
		Value               float32 `json:"value"`
		ArriveTangent       float32 `json:"arrive_tangent"`
		ArriveTangentWeight float32 `json:"arrive_tangent_weight"`
		LeaveTangent        float32 `json:"leave_tangent"`
		LeaveTangentWeight  float32 `json:"leave_tangent_weight"`
	}
	ViewTargetBlendParamsProperty struct {
		Header
		BlendTime     float32 `json:"blend_time"`
		BlendFunction uint8   `json:"blend_function"`
		BlendExp      float32 `json:"blend_exp"`
		LockOutgoing  bool    `json:"lock_outgoing"`
	}
	GameplayTagContainerProperty struct {
		Header
		Value []uname.Name `json:"value"`
	}
	// SmartNameProperty keeps the legacy id and guid only for the anim
	// versions that still store them.
	SmartNameProperty struct {
		Header
		DisplayName uname.Name   `json:"display_name"`
		SmartNameID *uint16      `json:"smart_name_id,omitempty"`
		TempGuid    *utypes.Guid `json:"temp_guid,omitempty"`
	}
	FontCharacterProperty struct {
		Header
		StartU         int32 `json:"start_u"`
		StartV         int32 `json:"start_v"`
		SizeU          int32 `json:"size_u"`
		SizeV          int32 `json:"size_v"`
		TextureIndex   uint8 `json:"texture_index"`
		VerticalOffset int32 `json:"vertical_offset"`
	}
	UniqueNetID struct {
		Type     uname.Name `json:"type"`
		Contents string     `json:"contents"`
	}
	UniqueNetIdReplProperty struct {
		Header
		Value *UniqueNetID `json:"value,omitempty"`
	}
	FloatRangeProperty struct {
		Header
		LowerBound float32 `json:"lower_bound"`
		UpperBound float32 `json:"upper_bound"`
	}
	RawStructProperty struct {
		Header
		Value []byte `json:"value"`
	}
)

func (p *RichCurveKeyProperty) TypeName() string { return "RichCurveKey" }

func (p *RichCurveKeyProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	modes, err := r.ReadBytes(3)
	if err != nil {
		return err
	}
	p.InterpMode, p.TangentMode, p.TangentWeightMode = int8(modes[0]), int8(modes[1]), int8(modes[2])
	return readF32s(
		r,
		&p.Time, &p.Value,
		&p.ArriveTangent, &p.ArriveTangentWeight,
		&p.LeaveTangent, &p.LeaveTangentWeight,
	)
}

func (p *RichCurveKeyProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	modes := []byte{byte(p.InterpMode), byte(p.TangentMode), byte(p.TangentWeightMode)}
	if err := w.WriteBytes(modes); err != nil {
		return 0, err
	}
	err := writeF32s(
		w,
		p.Time, p.Value,
		p.ArriveTangent, p.ArriveTangentWeight,
		p.LeaveTangent, p.LeaveTangentWeight,
	)
	return 27, err
}

func (p *ViewTargetBlendParamsProperty) TypeName() string { return "ViewTargetBlendParams" }

func (p *ViewTargetBlendParamsProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.BlendTime, err = r.ReadF32(); err != nil {
		return err
	}
	if p.BlendFunction, err = r.ReadU8(); err != nil {
		return err
	}
	if p.BlendExp, err = r.ReadF32(); err != nil {
		return err
	}
	p.LockOutgoing, err = r.ReadBool32()
	return err
}

func (p *ViewTargetBlendParamsProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if err := w.WriteF32(p.BlendTime); err != nil {
		return 0, err
	}
	if err := w.WriteU8(p.BlendFunction); err != nil {
		return 0, err
	}
	if err := w.WriteF32(p.BlendExp); err != nil {
		return 0, err
	}
	return 13, w.WriteBool32(p.LockOutgoing)
}

func (p *GameplayTagContainerProperty) TypeName() string { return "GameplayTagContainer" }

func (p *GameplayTagContainerProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readList(r, r.ReadFName)
	return err
}

func (p *GameplayTagContainerProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(4 + 8*len(p.Value)), writeList(w, p.Value, w.WriteFName)
}

func (p *SmartNameProperty) TypeName() string { return "SmartName" }

func (p *SmartNameProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.DisplayName, err = r.ReadFName(); err != nil {
		return err
	}
	animVersion := r.CustomVersion(uversion.AnimPhysObjectVersion)
	if animVersion < uversion.AnimPhysRemoveUIDFromSmartNameSerialize {
		id, err := r.ReadU16()
		if err != nil {
			return err
		}
		p.SmartNameID = &id
	}
	if animVersion < uversion.AnimPhysSmartNameRefactorForDeterministicCooking {
		guid, err := r.ReadGuidValue()
		if err != nil {
			return err
		}
		p.TempGuid = &guid
	}
	return nil
}

func (p *SmartNameProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := w.WriteFName(p.DisplayName); err != nil {
			return err
		}
		animVersion := w.CustomVersion(uversion.AnimPhysObjectVersion)
		if animVersion < uversion.AnimPhysRemoveUIDFromSmartNameSerialize {
			if p.SmartNameID == nil {
				return uerr.ErrNoData{Reason: "smart name id is required by this anim version"}
			}
			if err := w.WriteU16(*p.SmartNameID); err != nil {
				return err
			}
		}
		if animVersion < uversion.AnimPhysSmartNameRefactorForDeterministicCooking {
			if p.TempGuid == nil {
				return uerr.ErrNoData{Reason: "smart name temp guid is required by this anim version"}
			}
			return w.WriteGuidValue(*p.TempGuid)
		}
		return nil
	})
}

func (p *FontCharacterProperty) TypeName() string { return "FontCharacter" }

func (p *FontCharacterProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if err := readI32s(r, &p.StartU, &p.StartV, &p.SizeU, &p.SizeV); err != nil {
		return err
	}
	if p.TextureIndex, err = r.ReadU8(); err != nil {
		return err
	}
	p.VerticalOffset, err = r.ReadI32()
	return err
}

func (p *FontCharacterProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if err := writeI32s(w, p.StartU, p.StartV, p.SizeU, p.SizeV); err != nil {
		return 0, err
	}
	if err := w.WriteU8(p.TextureIndex); err != nil {
		return 0, err
	}
	return 21, w.WriteI32(p.VerticalOffset)
}

func (p *UniqueNetIdReplProperty) TypeName() string { return "UniqueNetIdRepl" }

func (p *UniqueNetIdReplProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	size, err := r.ReadI32()
	if err != nil || size <= 0 {
		return err
	}
	id := UniqueNetID{}
	if id.Type, err = r.ReadFName(); err != nil {
		return err
	}
	if id.Contents, err = r.ReadFString(); err != nil {
		return err
	}
	p.Value = &id
	return nil
}

func (p *UniqueNetIdReplProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		sizePosition := w.Position()
		if err := w.WriteI32(0); err != nil || p.Value == nil {
			return err
		}
		if err := w.WriteFName(p.Value.Type); err != nil {
			return err
		}
		if err := w.WriteFString(p.Value.Contents); err != nil {
			return err
		}
		size := int32(w.Position() - sizePosition - 4)
		return w.Patch(sizePosition, func() error { return w.WriteI32(size) })
	})
}

func (p *FloatRangeProperty) TypeName() string { return "FloatRange" }

func (p *FloatRangeProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readF32s(r, &p.LowerBound, &p.UpperBound)
}

func (p *FloatRangeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, writeF32s(w, p.LowerBound, p.UpperBound)
}

func (p *RawStructProperty) TypeName() string { return "RawStructProperty" }

func (p *RawStructProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadBytes(int(ctx.Length))
	return err
}

func (p *RawStructProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return int64(len(p.Value)), w.WriteBytes(p.Value)
}
