package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	// MeshToMeshVertData maps a vertex of one mesh onto a triangle of another.
	MeshToMeshVertData struct {
		PositionBaryCoordsAndDist Vector4   `json:"position_bary_coords_and_dist"`
		NormalBaryCoordsAndDist   Vector4   `json:"normal_bary_coords_and_dist"`
		TangentBaryCoordsAndDist  Vector4   `json:"tangent_bary_coords_and_dist"`
		SourceMeshVertIndices     [4]uint16 `json:"source_mesh_vert_indices"`
		Weight                    float32   `json:"weight"`
		Padding                   uint32    `json:"padding"`
	}
	// ClothLODDataProperty is a tagged struct followed by the skinning data
	// used when blending to the next and previous level of detail.
	ClothLODDataProperty struct {
		Header
		Value                  []Property           `json:"value"`
		TransitionUpSkinData   []MeshToMeshVertData `json:"transition_up_skin_data"`
		TransitionDownSkinData []MeshToMeshVertData `json:"transition_down_skin_data"`
	}
)

func readVector4(r *uarchive.Reader) (vector Vector4, err error) {
	err = readF32s(r, &vector.X, &vector.Y, &vector.Z, &vector.W)
	return vector, err
}

func writeVector4(w *uarchive.Writer, vector Vector4) error {
	return writeF32s(w, vector.X, vector.Y, vector.Z, vector.W)
}

func readMeshToMeshVertData(r *uarchive.Reader) (data MeshToMeshVertData, err error) {
	for _, target := range []*Vector4{
		&data.PositionBaryCoordsAndDist,
		&data.NormalBaryCoordsAndDist,
		&data.TangentBaryCoordsAndDist,
	} {
		if *target, err = readVector4(r); err != nil {
			return data, err
		}
	}
	for i := range data.SourceMeshVertIndices {
		if data.SourceMeshVertIndices[i], err = r.ReadU16(); err != nil {
			return data, err
		}
	}
	if data.Weight, err = r.ReadF32(); err != nil {
		return data, err
	}
	data.Padding, err = r.ReadU32()
	return data, err
}

func writeMeshToMeshVertData(w *uarchive.Writer, data MeshToMeshVertData) error {
	for _, vector := range []Vector4{
		data.PositionBaryCoordsAndDist,
		data.NormalBaryCoordsAndDist,
		data.TangentBaryCoordsAndDist,
	} {
		if err := writeVector4(w, vector); err != nil {
			return err
		}
	}
	for _, index := range data.SourceMeshVertIndices {
		if err := w.WriteU16(index); err != nil {
			return err
		}
	}
	if err := w.WriteF32(data.Weight); err != nil {
		return err
	}
	return w.WriteU32(data.Padding)
}

func (p *ClothLODDataProperty) TypeName() string { return "ClothLODData" }

func (p *ClothLODDataProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.Value, err = ReadAll(r, ctx.Ancestry.With(p.TypeName())); err != nil {
		return err
	}
	if p.TransitionUpSkinData, err = readArray(r, readMeshToMeshVertData); err != nil {
		return errors.Wrap(err, "ClothLODData error reading transition up skin data")
	}
	if p.TransitionDownSkinData, err = readArray(r, readMeshToMeshVertData); err != nil {
		return errors.Wrap(err, "ClothLODData error reading transition down skin data")
	}
	return nil
}

func (p *ClothLODDataProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return measure(w, func() error {
		if err := WriteAll(w, p.Value); err != nil {
			return err
		}
		if err := writeArray(w, p.TransitionUpSkinData, writeMeshToMeshVertData); err != nil {
			return err
		}
		return writeArray(w, p.TransitionDownSkinData, writeMeshToMeshVertData)
	})
}
