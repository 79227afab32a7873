package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	IntPoint struct {
		X int32 `json:"x"`
		Y int32 `json:"y"`
	}
	Vector struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
		Z float32 `json:"z"`
	}
	Vector4 struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
		Z float32 `json:"z"`
		W float32 `json:"w"`
	}
	Vector2D struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
	}
	Box struct {
		Min     Vector `json:"min"`
		Max     Vector `json:"max"`
		IsValid bool   `json:"is_valid"`
	}
	Box2D struct {
		Min     Vector2D `json:"min"`
		Max     Vector2D `json:"max"`
		IsValid bool     `json:"is_valid"`
	}
	Rotator struct {
		Pitch float32 `json:"pitch"`
		Yaw   float32 `json:"yaw"`
		Roll  float32 `json:"roll"`
	}
	LinearColor struct {
		R float32 `json:"r"`
		G float32 `json:"g"`
		B float32 `json:"b"`
		A float32 `json:"a"`
	}
	// Color is stored in BGRA byte order.
	Color struct {
		B uint8 `json:"b"`
		G uint8 `json:"g"`
		R uint8 `json:"r"`
		A uint8 `json:"a"`
	}
)

type (
	IntPointProperty struct {
		Header
		Value IntPoint `json:"value"`
	}
	VectorProperty struct {
		Header
		Value Vector `json:"value"`
	}
	Vector4Property struct {
		Header
		Value Vector4 `json:"value"`
	}
	Vector2DProperty struct {
		Header
		Value Vector2D `json:"value"`
	}
	BoxProperty struct {
		Header
		Value Box `json:"value"`
	}
	Box2DProperty struct {
		Header
		Value Box2D `json:"value"`
	}
	QuatProperty struct {
		Header
		Value Vector4 `json:"value"`
	}
	RotatorProperty struct {
		Header
		Value Rotator `json:"value"`
	}
	LinearColorProperty struct {
		Header
		Value LinearColor `json:"value"`
	}
	ColorProperty struct {
		Header
		Value Color `json:"value"`
	}
)

func readF32s(r *uarchive.Reader, targets ...*float32) error {
	for _, target := range targets {
		value, err := r.ReadF32()
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

func writeF32s(w *uarchive.Writer, values ...float32) error {
	for _, value := range values {
		if err := w.WriteF32(value); err != nil {
			return err
		}
	}
	return nil
}

func readI32s(r *uarchive.Reader, targets ...*int32) error {
	for _, target := range targets {
		value, err := r.ReadI32()
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

func writeI32s(w *uarchive.Writer, values ...int32) error {
	for _, value := range values {
		if err := w.WriteI32(value); err != nil {
			return err
		}
	}
	return nil
}

func ReadIntPoint(r *uarchive.Reader) (IntPoint, error) {
	point := IntPoint{}
	err := readI32s(r, &point.X, &point.Y)
	return point, err
}

func WriteIntPoint(w *uarchive.Writer, point IntPoint) error {
	return writeI32s(w, point.X, point.Y)
}

func ReadVector(r *uarchive.Reader) (Vector, error) {
	vector := Vector{}
	err := readF32s(r, &vector.X, &vector.Y, &vector.Z)
	return vector, err
}

func WriteVector(w *uarchive.Writer, vector Vector) error {
	return writeF32s(w, vector.X, vector.Y, vector.Z)
}

func ReadVector2D(r *uarchive.Reader) (Vector2D, error) {
	vector := Vector2D{}
	err := readF32s(r, &vector.X, &vector.Y)
	return vector, err
}

func WriteVector2D(w *uarchive.Writer, vector Vector2D) error {
	return writeF32s(w, vector.X, vector.Y)
}

func ReadBox(r *uarchive.Reader) (box Box, err error) {
	if box.Min, err = ReadVector(r); err != nil {
		return box, err
	}
	if box.Max, err = ReadVector(r); err != nil {
		return box, err
	}
	box.IsValid, err = r.ReadBool8()
	return box, err
}

func WriteBox(w *uarchive.Writer, box Box) error {
	if err := WriteVector(w, box.Min); err != nil {
		return err
	}
	if err := WriteVector(w, box.Max); err != nil {
		return err
	}
	return w.WriteBool8(box.IsValid)
}

func ReadColor(r *uarchive.Reader) (Color, error) {
	bs, err := r.ReadBytes(4)
	if err != nil {
		return Color{}, err
	}
	return Color{B: bs[0], G: bs[1], R: bs[2], A: bs[3]}, nil
}

func WriteColor(w *uarchive.Writer, color Color) error {
	return w.WriteBytes([]byte{color.B, color.G, color.R, color.A})
}

func (p *IntPointProperty) TypeName() string { return "IntPoint" }

func (p *IntPointProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = ReadIntPoint(r)
	return err
}

func (p *IntPointProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, WriteIntPoint(w, p.Value)
}

func (p *VectorProperty) TypeName() string { return "Vector" }

func (p *VectorProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = ReadVector(r)
	return err
}

func (p *VectorProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 12, WriteVector(w, p.Value)
}

func (p *Vector4Property) TypeName() string { return "Vector4" }

func (p *Vector4Property) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readF32s(r, &p.Value.X, &p.Value.Y, &p.Value.Z, &p.Value.W)
}

func (p *Vector4Property) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 16, writeF32s(w, p.Value.X, p.Value.Y, p.Value.Z, p.Value.W)
}

func (p *Vector2DProperty) TypeName() string { return "Vector2D" }

func (p *Vector2DProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = ReadVector2D(r)
	return err
}

func (p *Vector2DProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 8, WriteVector2D(w, p.Value)
}

func (p *BoxProperty) TypeName() string { return "Box" }

func (p *BoxProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = ReadBox(r)
	return err
}

func (p *BoxProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 25, WriteBox(w, p.Value)
}

func (p *Box2DProperty) TypeName() string { return "Box2D" }

func (p *Box2DProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.Value.Min, err = ReadVector2D(r); err != nil {
		return err
	}
	if p.Value.Max, err = ReadVector2D(r); err != nil {
		return err
	}
	p.Value.IsValid, err = r.ReadBool8()
	return err
}

func (p *Box2DProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if err := WriteVector2D(w, p.Value.Min); err != nil {
		return 0, err
	}
	if err := WriteVector2D(w, p.Value.Max); err != nil {
		return 0, err
	}
	return 17, w.WriteBool8(p.Value.IsValid)
}

func (p *QuatProperty) TypeName() string { return "Quat" }

func (p *QuatProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readF32s(r, &p.Value.X, &p.Value.Y, &p.Value.Z, &p.Value.W)
}

func (p *QuatProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 16, writeF32s(w, p.Value.X, p.Value.Y, p.Value.Z, p.Value.W)
}

func (p *RotatorProperty) TypeName() string { return "Rotator" }

func (p *RotatorProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readF32s(r, &p.Value.Pitch, &p.Value.Yaw, &p.Value.Roll)
}

func (p *RotatorProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 12, writeF32s(w, p.Value.Pitch, p.Value.Yaw, p.Value.Roll)
}

func (p *LinearColorProperty) TypeName() string { return "LinearColor" }

func (p *LinearColorProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readF32s(r, &p.Value.R, &p.Value.G, &p.Value.B, &p.Value.A)
}

func (p *LinearColorProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 16, writeF32s(w, p.Value.R, p.Value.G, p.Value.B, p.Value.A)
}

func (p *ColorProperty) TypeName() string { return "Color" }

func (p *ColorProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = ReadColor(r)
	return err
}

func (p *ColorProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, WriteColor(w, p.Value)
}
