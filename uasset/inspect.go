package uasset

import (
	"encoding/binary"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucontainer"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
	"github.com/thanhnguyen2187/asset-savior/uasset/uheader"
	"github.com/thanhnguyen2187/asset-savior/uasset/uindex"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
)

// IsAssetFile reports whether bs starts with the package magic.
func IsAssetFile(bs []byte) bool {
	if len(bs) < 4 {
		return false
	}
	return binary.BigEndian.Uint32(bs[:4]) == uheader.Magic
}

// ToOrderedMap builds a JSON friendly view of c that keeps table order.
func ToOrderedMap(c *ucontainer.Container) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("summary", summaryMap(c))
	lhm.Set("names", lo.Map(c.Names().Entries(), func(entry uname.Entry, _ int) string {
		return entry.Content
	}))
	lhm.Set("imports", lo.Map(c.Imports(), func(imp uindex.Import, _ int) *orderedmap.OrderedMap {
		importMap := orderedmap.New()
		importMap.Set("class_package", imp.ClassPackage.String())
		importMap.Set("class_name", imp.ClassName.String())
		importMap.Set("outer_index", imp.OuterIndex)
		importMap.Set("object_name", imp.ObjectName.String())
		return importMap
	}))
	lhm.Set("exports", lo.Map(c.Exports, func(export uexport.Export, i int) *orderedmap.OrderedMap {
		return exportMap(c, export, i)
	}))
	if c.SoftPackageReferences != nil {
		lhm.Set("soft_package_references", c.SoftPackageReferences)
	}
	if c.WorldTileInfo != nil {
		lhm.Set("world_tile_info", c.WorldTileInfo)
	}
	return lhm
}

func summaryMap(c *ucontainer.Container) *orderedmap.OrderedMap {
	h := c.Header
	lhm := orderedmap.New()
	lhm.Set("legacy_file_version", h.LegacyFileVersion)
	lhm.Set("object_version", c.Settings().ObjectVersion)
	lhm.Set("engine_version", c.Settings().Engine().String())
	lhm.Set("unversioned", h.Unversioned())
	lhm.Set("event_driven", c.EventDriven())
	lhm.Set("custom_versions", c.Settings().CustomVersions)
	lhm.Set("folder_name", h.FolderName)
	lhm.Set("package_flags", h.PackageFlags)
	lhm.Set("package_guid", h.PackageGuid)
	lhm.Set("generations", h.Generations)
	lhm.Set("recorded_engine_version", h.RecordedEngine)
	lhm.Set("compatible_engine_version", h.CompatibleEngine)
	lhm.Set("chunk_ids", h.ChunkIDs)
	return lhm
}

func exportMap(c *ucontainer.Container, export uexport.Export, index int) *orderedmap.OrderedMap {
	base := export.Base()
	classType, err := c.ResolveClassName(base.ClassIndex)
	if err != nil {
		classType = ""
	}

	lhm := orderedmap.New()
	lhm.Set("index", index)
	lhm.Set("object_name", base.ObjectName.String())
	lhm.Set("class", classType)
	lhm.Set("kind", ExportKind(export).String())
	lhm.Set("serial_offset", base.SerialOffset)
	lhm.Set("serial_size", base.SerialSize)
	if fallback, ok := c.Fallbacks[index]; ok {
		lhm.Set("fallback", fallback.Error())
	}

	normalized, ok := export.(uexport.Normalized)
	if !ok {
		if raw, ok := export.(*uexport.RawExport); ok {
			lhm.Set("data_length", len(raw.Data))
		}
		return lhm
	}
	lhm.Set("properties", PropertiesMap(normalized.Normal().Properties))
	switch typed := export.(type) {
	case *uexport.DataTableExport:
		rows := orderedmap.New()
		for _, row := range typed.Rows {
			rows.Set(row.Name.String(), PropertiesMap(row.Value))
		}
		lhm.Set("rows", rows)
	case *uexport.StringTableExport:
		lhm.Set("namespace", typed.Namespace)
		lhm.Set("entries", typed.Entries)
	case *uexport.EnumExport:
		lhm.Set("names", typed.Names)
	}
	if extras := normalized.Normal().Extras; len(extras) > 0 {
		lhm.Set("extras_length", len(extras))
	}
	return lhm
}

// PropertiesMap keys properties by name. Duplicated names get their
// duplication index appended.
func PropertiesMap(properties []uproperty.Property) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, property := range properties {
		header := property.Base()
		key := header.Name.String()
		if header.DuplicationIndex != 0 {
			key = fmt.Sprintf("%s[%d]", key, header.DuplicationIndex)
		}
		entry := orderedmap.New()
		entry.Set("type", property.TypeName())
		entry.Set("value", property)
		lhm.Set(key, entry)
	}
	return lhm
}

// ExportKind reports the codec an export was decoded with.
func ExportKind(export uexport.Export) uexport.Kind {
	switch export.(type) {
	case *uexport.RawExport:
		return uexport.KindRaw
	case *uexport.LevelExport:
		return uexport.KindLevel
	case *uexport.StringTableExport:
		return uexport.KindStringTable
	case *uexport.EnumExport:
		return uexport.KindEnum
	case *uexport.FunctionExport:
		return uexport.KindFunction
	case *uexport.DataTableExport:
		return uexport.KindDataTable
	case *uexport.ClassExport:
		return uexport.KindClass
	case *uexport.PropertyExport:
		return uexport.KindProperty
	default:
		return uexport.KindNormal
	}
}
