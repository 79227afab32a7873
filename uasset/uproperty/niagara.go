package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
)

const typeNiagaraTypeDefinition = "NiagaraTypeDefinition"

type (
	// NiagaraVariableProperty is a variable name, the tagged properties of
	// its type definition, then the raw variable data.
	NiagaraVariableProperty struct {
		Header
		VariableName   uname.Name `json:"variable_name"`
		TypeDefinition []Property `json:"type_definition"`
		VarData        []byte     `json:"var_data"`
	}
	NiagaraVariableWithOffsetProperty struct {
		Header
		VariableName   uname.Name `json:"variable_name"`
		TypeDefinition []Property `json:"type_definition"`
		VariableOffset int32      `json:"variable_offset"`
	}
)

func readNiagaraVariable(r *uarchive.Reader, ancestry Ancestry) (name uname.Name, definition []Property, err error) {
	if name, err = r.ReadFName(); err != nil {
		return name, nil, err
	}
	definition, err = ReadAll(r, ancestry.With(typeNiagaraTypeDefinition))
	return name, definition, err
}

func writeNiagaraVariable(w *uarchive.Writer, name uname.Name, definition []Property) error {
	if err := w.WriteFName(name); err != nil {
		return err
	}
	return WriteAll(w, definition)
}

func (p *NiagaraVariableProperty) TypeName() string { return "NiagaraVariable" }

func (p *NiagaraVariableProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.VariableName, p.TypeDefinition, err = readNiagaraVariable(r, ctx.Ancestry); err != nil {
		return err
	}
	size, err := r.ReadCount()
	if err != nil {
		return err
	}
	p.VarData, err = r.ReadBytes(size)
	return err
}

func (p *NiagaraVariableProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := writeNiagaraVariable(w, p.VariableName, p.TypeDefinition); err != nil {
			return err
		}
		if err := w.WriteI32(int32(len(p.VarData))); err != nil {
			return err
		}
		return w.WriteBytes(p.VarData)
	})
}

func (p *NiagaraVariableWithOffsetProperty) TypeName() string { return "NiagaraVariableWithOffset" }

func (p *NiagaraVariableWithOffsetProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.VariableName, p.TypeDefinition, err = readNiagaraVariable(r, ctx.Ancestry); err != nil {
		return err
	}
	p.VariableOffset, err = r.ReadI32()
	return err
}

func (p *NiagaraVariableWithOffsetProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := writeNiagaraVariable(w, p.VariableName, p.TypeDefinition); err != nil {
			return err
		}
		return w.WriteI32(p.VariableOffset)
	})
}
