package uexport

import (
	"github.com/thanhnguyen2187/asset-savior/ds"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
	"github.com/thanhnguyen2187/asset-savior/uasset/uname"
	"github.com/thanhnguyen2187/asset-savior/uasset/uproperty"
	"github.com/thanhnguyen2187/asset-savior/uasset/utypes"
)

type (
	// BaseExport is the export map entry. The dependency lists are only
	// stored by event-driven containers, in the preload dependency region.
	BaseExport struct {
		ClassIndex                   utypes.PackageIndex `json:"class_index"`
		SuperIndex                   utypes.PackageIndex `json:"super_index"`
		TemplateIndex                utypes.PackageIndex `json:"template_index"`
		OuterIndex                   utypes.PackageIndex `json:"outer_index"`
		ObjectName                   uname.Name          `json:"object_name"`
		ObjectFlags                  uint32              `json:"object_flags"`
		SerialSize                   int64               `json:"serial_size"`
		SerialOffset                 int64               `json:"serial_offset"`
		ForcedExport                 bool                `json:"forced_export"`
		NotForClient                 bool                `json:"not_for_client"`
		NotForServer                 bool                `json:"not_for_server"`
		PackageGuid                  utypes.Guid         `json:"package_guid"`
		PackageFlags                 uint32              `json:"package_flags"`
		NotAlwaysLoadedForEditorGame bool                `json:"not_always_loaded_for_editor_game"`
		IsAsset                      bool                `json:"is_asset"`
		FirstExportDependencyOffset  int32               `json:"first_export_dependency_offset"`
		DependencySizes              DependencySizes     `json:"dependency_sizes"`
		Dependencies                 Dependencies        `json:"dependencies"`
	}
	// Dependencies are the four preload dependency lists of an export, in
	// stream order.
	Dependencies struct {
		SerializationBeforeSerialization []utypes.PackageIndex `json:"serialization_before_serialization"`
		CreateBeforeSerialization        []utypes.PackageIndex `json:"create_before_serialization"`
		SerializationBeforeCreate        []utypes.PackageIndex `json:"serialization_before_create"`
		CreateBeforeCreate               []utypes.PackageIndex `json:"create_before_create"`
	}
	// DependencySizes are the list lengths stored in the export map, in the
	// order of Dependencies.
	DependencySizes [4]int32

	// Export is one decoded export payload.
	Export interface {
		Base() *BaseExport
		read(r *uarchive.Reader, ctx Context) error
		write(w *uarchive.Writer, ctx Context) error
	}
	// Normalized exports start with tagged properties and keep the bytes
	// that follow their modelled payload.
	Normalized interface {
		Export
		Normal() *NormalExport
	}
	// Context is passed to every export codec.
	Context struct {
		// ClassType is the resolved class name of the export.
		ClassType string
		// End is the offset where the payload region of the export ends.
		End         int64
		ScriptCodec ScriptCodec
	}

	RawExport struct {
		BaseExport
		Data []byte `json:"data"`
	}
	NormalExport struct {
		BaseExport
		Properties []uproperty.Property `json:"properties"`
		Extras     []byte               `json:"extras"`
	}

	// Overrides are struct types learned from a class export. They apply to
	// map properties decoded after the export.
	Overrides struct {
		MapKeyStructTypes   *ds.LinkedHashMap[string, string]
		MapValueStructTypes *ds.LinkedHashMap[string, string]
	}
	// Decoded is the result of decoding one export.
	Decoded struct {
		Export    Export
		Kind      Kind
		Overrides Overrides
		// Fallback is the reason the export was kept as raw bytes, if it was.
		Fallback error
	}
)
