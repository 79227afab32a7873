package uversion

// ObjectVersion is the package file version. Fields are present in the
// stream only when the container's version reaches their threshold.
type ObjectVersion int32

const (
	VerUnknown                              ObjectVersion = 0
	VerOldestLoadablePackage                ObjectVersion = 214
	VerUClassSerializeInterfacesAfterLink   ObjectVersion = 222
	VerWorldLevelInfo                       ObjectVersion = 224
	VerSerializeRichCurveKey                ObjectVersion = 231
	VerWorldLevelInfoUpdated                ObjectVersion = 256
	VerWorldLevelInfoLODList                ObjectVersion = 260
	VerWorldLevelInfoZOrder                 ObjectVersion = 271
	VerWorldLayerEnableDistanceStreaming    ObjectVersion = 277
	VerAddedChunkIDToAssetDataAndUPackage   ObjectVersion = 278
	VerAddedNamespaceAndKeyDataToFText      ObjectVersion = 288
	VerChangedChunkIDToBeAnArrayOfChunkIDs  ObjectVersion = 326
	VerEngineVersionObject                  ObjectVersion = 336
	VerLoadForEditorGame                    ObjectVersion = 365
	VerFTextHistory                         ObjectVersion = 368
	VerAddStringAssetReferencesMap          ObjectVersion = 384
	VerTightlyPackedEnums                   ObjectVersion = 386
	VerEnumClassSupport                     ObjectVersion = 420
	VerStructGuidInPropertyTag              ObjectVersion = 441
	VerPackageSummaryHasCompatibleEngineVer ObjectVersion = 444
	VerSerializeTextInPackages              ObjectVersion = 459
	VerCookedAssetsInEditorSupport          ObjectVersion = 485
	VerAddCookedToUClass                    ObjectVersion = 497
	VerInnerArrayTagInfo                    ObjectVersion = 500
	VerPropertyGuidInPropertyTag            ObjectVersion = 503
	VerNameHashesSerialized                 ObjectVersion = 504
	VerPreloadDependenciesInCookedExports   ObjectVersion = 507
	VerTemplateIndexInCookedExports         ObjectVersion = 508
	VerAddedSearchableNames                 ObjectVersion = 510
	Ver64BitExportMapSerialSizes            ObjectVersion = 511
	VerAddedSoftObjectPath                  ObjectVersion = 514
	VerAutomaticVersion                     ObjectVersion = 522
)

// AtLeast reports whether v has reached threshold.
func (v ObjectVersion) AtLeast(threshold ObjectVersion) bool {
	return v >= threshold
}
