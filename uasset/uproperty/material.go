package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
)

// MaterialExpression is the shared prefix of every material input.
type MaterialExpression struct {
	OutputIndex    int32      `json:"output_index"`
	InputName      uname.Name `json:"input_name"`
	Mask           int32      `json:"mask"`
	MaskR          int32      `json:"mask_r"`
	MaskG          int32      `json:"mask_g"`
	MaskB          int32      `json:"mask_b"`
	MaskA          int32      `json:"mask_a"`
	ExpressionName uname.Name `json:"expression_name"`
}

const materialExpressionLength = 40

func readMaterialExpression(r *uarchive.Reader) (expression MaterialExpression, err error) {
	if expression.OutputIndex, err = r.ReadI32(); err != nil {
		return expression, err
	}
	if expression.InputName, err = r.ReadFName(); err != nil {
		return expression, err
	}
	err = readI32s(r, &expression.Mask, &expression.MaskR, &expression.MaskG, &expression.MaskB, &expression.MaskA)
	if err != nil {
		return expression, err
	}
	expression.ExpressionName, err = r.ReadFName()
	return expression, err
}

func writeMaterialExpression(w *uarchive.Writer, expression MaterialExpression) error {
	if err := w.WriteI32(expression.OutputIndex); err != nil {
		return err
	}
	if err := w.WriteFName(expression.InputName); err != nil {
		return err
	}
	err := writeI32s(w, expression.Mask, expression.MaskR, expression.MaskG, expression.MaskB, expression.MaskA)
	if err != nil {
		return err
	}
	return w.WriteFName(expression.ExpressionName)
}

type (
	ExpressionInputProperty struct {
		Header
		Value MaterialExpression `json:"value"`
	}
	MaterialAttributesInputProperty struct {
		Header
		Expression               MaterialExpression `json:"expression"`
		PropertyConnectedBitmask int32              `json:"property_connected_bitmask"`
	}
	ColorMaterialInputProperty struct {
		Header
		Expression  MaterialExpression `json:"expression"`
		UseConstant bool               `json:"use_constant"`
		Value       Color              `json:"value"`
	}
	ScalarMaterialInputProperty struct {
		Header
		Expression  MaterialExpression `json:"expression"`
		UseConstant bool               `json:"use_constant"`
		Value       float32            `json:"value"`
	}
	ShadingModelMaterialInputProperty struct {
		Header
		Expression  MaterialExpression `json:"expression"`
		UseConstant bool               `json:"use_constant"`
		Value       uint32             `json:"value"`
	}
	VectorMaterialInputProperty struct {
		Header
		Expression  MaterialExpression `json:"expression"`
		UseConstant bool               `json:"use_constant"`
		Value       Vector             `json:"value"`
	}
	Vector2MaterialInputProperty struct {
		Header
		Expression  MaterialExpression `json:"expression"`
		UseConstant bool               `json:"use_constant"`
		Value       Vector2D           `json:"value"`
	}
)

// readMaterialInput reads the guid, the expression and the constant flag
// shared by the constant-carrying inputs.
func readMaterialInput(r *uarchive.Reader, header *Header, ctx Context, expression *MaterialExpression, useConstant *bool) (err error) {
	if err := header.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if *expression, err = readMaterialExpression(r); err != nil {
		return err
	}
	*useConstant, err = r.ReadBool32()
	return err
}

func writeMaterialInput(w *uarchive.Writer, header *Header, includeHeader bool, expression MaterialExpression, useConstant bool) error {
	if err := header.writeGuid(w, includeHeader); err != nil {
		return err
	}
	if err := writeMaterialExpression(w, expression); err != nil {
		return err
	}
	return w.WriteBool32(useConstant)
}

func (p *ExpressionInputProperty) TypeName() string { return "ExpressionInput" }

func (p *ExpressionInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readMaterialExpression(r)
	return err
}

func (p *ExpressionInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return materialExpressionLength, writeMaterialExpression(w, p.Value)
}

func (p *MaterialAttributesInputProperty) TypeName() string { return "MaterialAttributesInput" }

func (p *MaterialAttributesInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.Expression, err = readMaterialExpression(r); err != nil {
		return err
	}
	p.PropertyConnectedBitmask, err = r.ReadI32()
	return err
}

func (p *MaterialAttributesInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if err := writeMaterialExpression(w, p.Expression); err != nil {
		return 0, err
	}
	return materialExpressionLength + 4, w.WriteI32(p.PropertyConnectedBitmask)
}

func (p *ColorMaterialInputProperty) TypeName() string { return "ColorMaterialInput" }

func (p *ColorMaterialInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := readMaterialInput(r, &p.Header, ctx, &p.Expression, &p.UseConstant); err != nil {
		return err
	}
	p.Value, err = ReadColor(r)
	return err
}

func (p *ColorMaterialInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeMaterialInput(w, &p.Header, includeHeader, p.Expression, p.UseConstant); err != nil {
		return 0, err
	}
	return materialExpressionLength + 8, WriteColor(w, p.Value)
}

func (p *ScalarMaterialInputProperty) TypeName() string { return "ScalarMaterialInput" }

func (p *ScalarMaterialInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := readMaterialInput(r, &p.Header, ctx, &p.Expression, &p.UseConstant); err != nil {
		return err
	}
	p.Value, err = r.ReadF32()
	return err
}

func (p *ScalarMaterialInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeMaterialInput(w, &p.Header, includeHeader, p.Expression, p.UseConstant); err != nil {
		return 0, err
	}
	return materialExpressionLength + 8, w.WriteF32(p.Value)
}

func (p *ShadingModelMaterialInputProperty) TypeName() string { return "ShadingModelMaterialInput" }

func (p *ShadingModelMaterialInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := readMaterialInput(r, &p.Header, ctx, &p.Expression, &p.UseConstant); err != nil {
		return err
	}
	p.Value, err = r.ReadU32()
	return err
}

func (p *ShadingModelMaterialInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeMaterialInput(w, &p.Header, includeHeader, p.Expression, p.UseConstant); err != nil {
		return 0, err
	}
	return materialExpressionLength + 8, w.WriteU32(p.Value)
}

func (p *VectorMaterialInputProperty) TypeName() string { return "VectorMaterialInput" }

func (p *VectorMaterialInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := readMaterialInput(r, &p.Header, ctx, &p.Expression, &p.UseConstant); err != nil {
		return err
	}
	p.Value, err = ReadVector(r)
	return err
}

func (p *VectorMaterialInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeMaterialInput(w, &p.Header, includeHeader, p.Expression, p.UseConstant); err != nil {
		return 0, err
	}
	return materialExpressionLength + 16, WriteVector(w, p.Value)
}

func (p *Vector2MaterialInputProperty) TypeName() string { return "Vector2MaterialInput" }

func (p *Vector2MaterialInputProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := readMaterialInput(r, &p.Header, ctx, &p.Expression, &p.UseConstant); err != nil {
		return err
	}
	p.Value, err = ReadVector2D(r)
	return err
}

func (p *Vector2MaterialInputProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := writeMaterialInput(w, &p.Header, includeHeader, p.Expression, p.UseConstant); err != nil {
		return 0, err
	}
	return materialExpressionLength + 12, WriteVector2D(w, p.Value)
}
