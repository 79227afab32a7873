package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

// WeightedRandomSampler is an alias-method sampling table.
type WeightedRandomSampler struct {
	Prob        []float32 `json:"prob"`
	Alias       []int32   `json:"alias"`
	TotalWeight float32   `json:"total_weight"`
}

func readSampler(r *uarchive.Reader) (sampler WeightedRandomSampler, err error) {
	if sampler.Prob, err = readList(r, r.ReadF32); err != nil {
		return sampler, err
	}
	if sampler.Alias, err = readList(r, r.ReadI32); err != nil {
		return sampler, err
	}
	sampler.TotalWeight, err = r.ReadF32()
	return sampler, err
}

func writeSampler(w *uarchive.Writer, sampler WeightedRandomSampler) (int64, error) {
	return measure(w, func() error {
		if err := writeList(w, sampler.Prob, w.WriteF32); err != nil {
			return err
		}
		if err := writeList(w, sampler.Alias, w.WriteI32); err != nil {
			return err
		}
		return w.WriteF32(sampler.TotalWeight)
	})
}

type (
	WeightedRandomSamplerProperty struct {
		Header
		Value WeightedRandomSampler `json:"value"`
	}
	SkeletalMeshAreaWeightedTriangleSamplerProperty struct {
		Header
		Value WeightedRandomSampler `json:"value"`
	}
	SkeletalMeshSamplingLODBuiltDataProperty struct {
		Header
		Value WeightedRandomSampler `json:"value"`
	}
)

func (p *WeightedRandomSamplerProperty) TypeName() string { return "WeightedRandomSampler" }

func (p *WeightedRandomSamplerProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSampler(r)
	return err
}

func (p *WeightedRandomSamplerProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSampler(w, p.Value)
}

func (p *SkeletalMeshAreaWeightedTriangleSamplerProperty) TypeName() string {
	return "SkeletalMeshAreaWeightedTriangleSampler"
}

func (p *SkeletalMeshAreaWeightedTriangleSamplerProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSampler(r)
	return err
}

func (p *SkeletalMeshAreaWeightedTriangleSamplerProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSampler(w, p.Value)
}

func (p *SkeletalMeshSamplingLODBuiltDataProperty) TypeName() string {
	return "SkeletalMeshSamplingLODBuiltData"
}

func (p *SkeletalMeshSamplingLODBuiltDataProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readSampler(r)
	return err
}

func (p *SkeletalMeshSamplingLODBuiltDataProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeSampler(w, p.Value)
}
