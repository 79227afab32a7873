package utypes

type (
	// GenerationInfo records the export and name counts of a previous save.
	GenerationInfo struct {
		ExportCount int32 `json:"export_count"`
		NameCount   int32 `json:"name_count"`
	}
	// EngineVersionRecord is an FEngineVersion as stored in the header.
	EngineVersionRecord struct {
		Major  uint16 `json:"major"`
		Minor  uint16 `json:"minor"`
		Patch  uint16 `json:"patch"`
		Build  uint32 `json:"build"`
		Branch string `json:"branch"`
	}
)
