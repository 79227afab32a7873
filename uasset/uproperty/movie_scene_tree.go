package uproperty

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	EvaluationTreeNodeHandle struct {
		ChildrenHandle int32 `json:"children_handle"`
		Index          int32 `json:"index"`
	}
	EvaluationTreeNode struct {
		Range      FrameRange               `json:"range"`
		Parent     EvaluationTreeNodeHandle `json:"parent"`
		ChildrenID int32                    `json:"children_id"`
		DataID     int32                    `json:"data_id"`
	}
	// EvaluationTreeEntry is a slice of the items of an entry container.
	EvaluationTreeEntry struct {
		StartIndex int32 `json:"start_index"`
		Size       int32 `json:"size"`
		Capacity   int32 `json:"capacity"`
	}
	EvaluationTreeEntryContainer[T any] struct {
		Entries []EvaluationTreeEntry `json:"entries"`
		Items   []T                   `json:"items"`
	}
	// EvaluationTree is a range tree of sequence data. Item layouts differ
	// per tree type.
	EvaluationTree[T any] struct {
		RootNode   EvaluationTreeNode                               `json:"root_node"`
		ChildNodes EvaluationTreeEntryContainer[EvaluationTreeNode] `json:"child_nodes"`
		Data       EvaluationTreeEntryContainer[T]                  `json:"data"`
	}

	EntityAndMetaDataIndex struct {
		EntityIndex   int32 `json:"entity_index"`
		MetaDataIndex int32 `json:"meta_data_index"`
	}
	SubSequenceTreeEntry struct {
		SequenceID uint32 `json:"sequence_id"`
		Flags      uint8  `json:"flags"`
	}

	MovieSceneEvaluationFieldEntityTreeProperty struct {
		Header
		Value EvaluationTree[EntityAndMetaDataIndex] `json:"value"`
	}
	MovieSceneSubSequenceTreeProperty struct {
		Header
		Value EvaluationTree[SubSequenceTreeEntry] `json:"value"`
	}
	// SectionEvaluationDataTreeProperty items are tagged property lists.
	SectionEvaluationDataTreeProperty struct {
		Header
		Value EvaluationTree[[]Property] `json:"value"`
	}
	MovieSceneTrackFieldDataProperty struct {
		Header
		Value EvaluationTree[uint32] `json:"value"`
	}
)

func readTreeNode(r *uarchive.Reader) (node EvaluationTreeNode, err error) {
	if node.Range, err = readFrameRange(r); err != nil {
		return node, err
	}
	err = readI32s(r, &node.Parent.ChildrenHandle, &node.Parent.Index, &node.ChildrenID, &node.DataID)
	return node, err
}

func writeTreeNode(w *uarchive.Writer, node EvaluationTreeNode) error {
	if err := writeFrameRange(w, node.Range); err != nil {
		return err
	}
	return writeI32s(w, node.Parent.ChildrenHandle, node.Parent.Index, node.ChildrenID, node.DataID)
}

func readTreeEntry(r *uarchive.Reader) (entry EvaluationTreeEntry, err error) {
	err = readI32s(r, &entry.StartIndex, &entry.Size, &entry.Capacity)
	return entry, err
}

func writeTreeEntry(w *uarchive.Writer, entry EvaluationTreeEntry) error {
	return writeI32s(w, entry.StartIndex, entry.Size, entry.Capacity)
}

func readEntryContainer[T any](
	r *uarchive.Reader,
	readItem func(r *uarchive.Reader) (T, error),
) (container EvaluationTreeEntryContainer[T], err error) {
	if container.Entries, err = readArray(r, readTreeEntry); err != nil {
		return container, errors.Wrap(err, "uproperty.readEntryContainer error reading entries")
	}
	if container.Items, err = readArray(r, readItem); err != nil {
		return container, errors.Wrap(err, "uproperty.readEntryContainer error reading items")
	}
	return container, nil
}

func writeEntryContainer[T any](
	w *uarchive.Writer,
	container EvaluationTreeEntryContainer[T],
	writeItem func(w *uarchive.Writer, item T) error,
) error {
	if err := writeArray(w, container.Entries, writeTreeEntry); err != nil {
		return err
	}
	return writeArray(w, container.Items, writeItem)
}

func readEvaluationTree[T any](
	r *uarchive.Reader,
	readItem func(r *uarchive.Reader) (T, error),
) (tree EvaluationTree[T], err error) {
	if tree.RootNode, err = readTreeNode(r); err != nil {
		return tree, errors.Wrap(err, "uproperty.readEvaluationTree error reading root node")
	}
	if tree.ChildNodes, err = readEntryContainer(r, readTreeNode); err != nil {
		return tree, errors.Wrap(err, "uproperty.readEvaluationTree error reading child nodes")
	}
	if tree.Data, err = readEntryContainer(r, readItem); err != nil {
		return tree, errors.Wrap(err, "uproperty.readEvaluationTree error reading data")
	}
	return tree, nil
}

func writeEvaluationTree[T any](
	w *uarchive.Writer,
	tree EvaluationTree[T],
	writeItem func(w *uarchive.Writer, item T) error,
) (int64, error) {
	return measure(w, func() error {
		if err := writeTreeNode(w, tree.RootNode); err != nil {
			return err
		}
		if err := writeEntryContainer(w, tree.ChildNodes, writeTreeNode); err != nil {
			return err
		}
		return writeEntryContainer(w, tree.Data, writeItem)
	})
}

func (p *MovieSceneEvaluationFieldEntityTreeProperty) TypeName() string {
	return "MovieSceneEvaluationFieldEntityTree"
}

func (p *MovieSceneEvaluationFieldEntityTreeProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readEvaluationTree(r, func(r *uarchive.Reader) (index EntityAndMetaDataIndex, err error) {
		err = readI32s(r, &index.EntityIndex, &index.MetaDataIndex)
		return index, err
	})
	return err
}

func (p *MovieSceneEvaluationFieldEntityTreeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeEvaluationTree(w, p.Value, func(w *uarchive.Writer, index EntityAndMetaDataIndex) error {
		return writeI32s(w, index.EntityIndex, index.MetaDataIndex)
	})
}

func (p *MovieSceneSubSequenceTreeProperty) TypeName() string { return "MovieSceneSubSequenceTree" }

func (p *MovieSceneSubSequenceTreeProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readEvaluationTree(r, func(r *uarchive.Reader) (entry SubSequenceTreeEntry, err error) {
		if entry.SequenceID, err = r.ReadU32(); err != nil {
			return entry, err
		}
		entry.Flags, err = r.ReadU8()
		return entry, err
	})
	return err
}

func (p *MovieSceneSubSequenceTreeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeEvaluationTree(w, p.Value, func(w *uarchive.Writer, entry SubSequenceTreeEntry) error {
		if err := w.WriteU32(entry.SequenceID); err != nil {
			return err
		}
		return w.WriteU8(entry.Flags)
	})
}

func (p *SectionEvaluationDataTreeProperty) TypeName() string { return "SectionEvaluationDataTree" }

func (p *SectionEvaluationDataTreeProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readEvaluationTree(r, readPropertyList(ctx.Ancestry.With(p.TypeName())))
	return err
}

func (p *SectionEvaluationDataTreeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeEvaluationTree(w, p.Value, writePropertyList)
}

func (p *MovieSceneTrackFieldDataProperty) TypeName() string { return "MovieSceneTrackFieldData" }

func (p *MovieSceneTrackFieldDataProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = readEvaluationTree(r, readU32Item)
	return err
}

func (p *MovieSceneTrackFieldDataProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return writeEvaluationTree(w, p.Value, writeU32Item)
}
