package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uerr"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type (
	WorldTileLayer struct {
		Name                     string   `json:"name"`
		Reserved0                int32    `json:"reserved_0"`
		Reserved1                IntPoint `json:"reserved_1"`
		StreamingDistance        *int32   `json:"streaming_distance,omitempty"`
		DistanceStreamingEnabled *bool    `json:"distance_streaming_enabled,omitempty"`
	}
	WorldTileLODInfo struct {
		RelativeStreamingDistance int32   `json:"relative_streaming_distance"`
		Reserved0                 float32 `json:"reserved_0"`
		Reserved1                 float32 `json:"reserved_1"`
		Reserved2                 int32   `json:"reserved_2"`
		Reserved3                 int32   `json:"reserved_3"`
	}
	// WorldTileInfo describes the placement of a level in world composition.
	// Optional fields are nil when the object version predates them.
	WorldTileInfo struct {
		// Position[2] is only stored by the 3D tile offset version.
		Position              [3]int32           `json:"position"`
		Bounds                Box                `json:"bounds"`
		Layer                 WorldTileLayer     `json:"layer"`
		HideInTileView        *bool              `json:"hide_in_tile_view,omitempty"`
		ParentTilePackageName *string            `json:"parent_tile_package_name,omitempty"`
		LODList               []WorldTileLODInfo `json:"lod_list,omitempty"`
		ZOrder                *int32             `json:"z_order,omitempty"`
	}
)

func readWorldTileLODInfo(r *uarchive.Reader) (info WorldTileLODInfo, err error) {
	if info.RelativeStreamingDistance, err = r.ReadI32(); err != nil {
		return info, err
	}
	if info.Reserved0, err = r.ReadF32(); err != nil {
		return info, err
	}
	if info.Reserved1, err = r.ReadF32(); err != nil {
		return info, err
	}
	if info.Reserved2, err = r.ReadI32(); err != nil {
		return info, err
	}
	info.Reserved3, err = r.ReadI32()
	return info, err
}

func readWorldTileLayer(r *uarchive.Reader) (layer WorldTileLayer, err error) {
	if layer.Name, err = r.ReadFString(); err != nil {
		return layer, err
	}
	if layer.Reserved0, err = r.ReadI32(); err != nil {
		return layer, err
	}
	if layer.Reserved1, err = ReadIntPoint(r); err != nil {
		return layer, err
	}
	if r.AtLeast(uversion.VerWorldLevelInfoUpdated) {
		distance, err := r.ReadI32()
		if err != nil {
			return layer, err
		}
		layer.StreamingDistance = &distance
	}
	if r.AtLeast(uversion.VerWorldLayerEnableDistanceStreaming) {
		enabled, err := r.ReadBool32()
		if err != nil {
			return layer, err
		}
		layer.DistanceStreamingEnabled = &enabled
	}
	return layer, nil
}

func ReadWorldTileInfo(r *uarchive.Reader) (*WorldTileInfo, error) {
	info := WorldTileInfo{}
	positionCount := 2
	if r.CustomVersion(uversion.FortniteMainBranchObjectVersion) >= uversion.FortniteWorldCompositionTile3DOffset {
		positionCount = 3
	}
	for i := 0; i < positionCount; i++ {
		value, err := r.ReadI32()
		if err != nil {
			return nil, errors.Wrap(err, "uproperty.ReadWorldTileInfo error reading position")
		}
		info.Position[i] = value
	}

	var err error
	if info.Bounds, err = ReadBox(r); err != nil {
		return nil, errors.Wrap(err, "uproperty.ReadWorldTileInfo error reading bounds")
	}
	if info.Layer, err = readWorldTileLayer(r); err != nil {
		return nil, errors.Wrap(err, "uproperty.ReadWorldTileInfo error reading layer")
	}

	if r.AtLeast(uversion.VerWorldLevelInfoUpdated) {
		hide, err := r.ReadBool32()
		if err != nil {
			return nil, err
		}
		parent, err := r.ReadFString()
		if err != nil {
			return nil, err
		}
		info.HideInTileView = &hide
		info.ParentTilePackageName = &parent
	}

	if r.AtLeast(uversion.VerWorldLevelInfoLODList) {
		count, err := r.ReadCount()
		if err != nil {
			return nil, err
		}
		info.LODList = make([]WorldTileLODInfo, 0, count)
		for i := 0; i < count; i++ {
			lodInfo, err := readWorldTileLODInfo(r)
			if err != nil {
				err := errors.Wrapf(err, "uproperty.ReadWorldTileInfo error reading LOD info %d", i)
				return nil, err
			}
			info.LODList = append(info.LODList, lodInfo)
		}
	}

	if r.AtLeast(uversion.VerWorldLevelInfoZOrder) {
		zOrder, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		info.ZOrder = &zOrder
	}

	return &info, nil
}

func missingWorldTileField(field string) error {
	return uerr.ErrNoData{Reason: "world tile info requires " + field + " for this object version"}
}

func WriteWorldTileInfo(w *uarchive.Writer, info *WorldTileInfo) error {
	positionCount := 2
	if w.CustomVersion(uversion.FortniteMainBranchObjectVersion) >= uversion.FortniteWorldCompositionTile3DOffset {
		positionCount = 3
	}
	if err := writeI32s(w, info.Position[:positionCount]...); err != nil {
		return err
	}
	if err := WriteBox(w, info.Bounds); err != nil {
		return err
	}

	layer := info.Layer
	if err := w.WriteFString(layer.Name); err != nil {
		return err
	}
	if err := w.WriteI32(layer.Reserved0); err != nil {
		return err
	}
	if err := WriteIntPoint(w, layer.Reserved1); err != nil {
		return err
	}
	if w.AtLeast(uversion.VerWorldLevelInfoUpdated) {
		if layer.StreamingDistance == nil {
			return missingWorldTileField("streaming distance")
		}
		if err := w.WriteI32(*layer.StreamingDistance); err != nil {
			return err
		}
	}
	if w.AtLeast(uversion.VerWorldLayerEnableDistanceStreaming) {
		if layer.DistanceStreamingEnabled == nil {
			return missingWorldTileField("distance streaming enabled")
		}
		if err := w.WriteBool32(*layer.DistanceStreamingEnabled); err != nil {
			return err
		}
	}

	if w.AtLeast(uversion.VerWorldLevelInfoUpdated) {
		if info.HideInTileView == nil {
			return missingWorldTileField("hide in tile view")
		}
		if err := w.WriteBool32(*info.HideInTileView); err != nil {
			return err
		}
		parent := ""
		if info.ParentTilePackageName != nil {
			parent = *info.ParentTilePackageName
		}
		if err := w.WriteFString(parent); err != nil {
			return err
		}
	}

	if w.AtLeast(uversion.VerWorldLevelInfoLODList) {
		if info.LODList == nil {
			return missingWorldTileField("LOD list")
		}
		err := writeList(w, info.LODList, func(lodInfo WorldTileLODInfo) error {
			if err := w.WriteI32(lodInfo.RelativeStreamingDistance); err != nil {
				return err
			}
			if err := writeF32s(w, lodInfo.Reserved0, lodInfo.Reserved1); err != nil {
				return err
			}
			return writeI32s(w, lodInfo.Reserved2, lodInfo.Reserved3)
		})
		if err != nil {
			return err
		}
	}

	if w.AtLeast(uversion.VerWorldLevelInfoZOrder) {
		if info.ZOrder == nil {
			return missingWorldTileField("z-order")
		}
		return w.WriteI32(*info.ZOrder)
	}
	return nil
}
