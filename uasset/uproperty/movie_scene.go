package uproperty

import (
	"github.com/thanhnguyen2187/asset-savior/uasset/uarchive"
)

type (
	MovieSceneSequenceIdProperty struct {
		Header
		Value uint32 `json:"value"`
	}
	MovieSceneTrackIdentifierProperty struct {
		Header
		Value uint32 `json:"value"`
	}
	MovieSceneSegmentIdentifierProperty struct {
		Header
		Value int32 `json:"value"`
	}
	MovieSceneEvaluationKeyProperty struct {
		Header
		SequenceID      uint32 `json:"sequence_id"`
		TrackIdentifier uint32 `json:"track_identifier"`
		SectionIndex    uint32 `json:"section_index"`
	}
	// FrameBound is a range bound; Type is 0 exclusive, 1 inclusive, 2 open.
	FrameBound struct {
		Type  int8  `json:"type"`
		Value int32 `json:"value"`
	}
	MovieSceneFrameRangeProperty struct {
		Header
		LowerBound FrameBound `json:"lower_bound"`
		UpperBound FrameBound `json:"upper_bound"`
	}
)

func readU32s(r *uarchive.Reader, targets ...*uint32) error {
	for _, target := range targets {
		value, err := r.ReadU32()
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

func writeU32s(w *uarchive.Writer, values ...uint32) error {
	for _, value := range values {
		if err := w.WriteU32(value); err != nil {
			return err
		}
	}
	return nil
}

func readFrameBound(r *uarchive.Reader) (bound FrameBound, err error) {
	if bound.Type, err = r.ReadI8(); err != nil {
		return bound, err
	}
	bound.Value, err = r.ReadI32()
	return bound, err
}

func writeFrameBound(w *uarchive.Writer, bound FrameBound) error {
	if err := w.WriteI8(bound.Type); err != nil {
		return err
	}
	return w.WriteI32(bound.Value)
}

func (p *MovieSceneSequenceIdProperty) TypeName() string { return "MovieSceneSequenceId" }

func (p *MovieSceneSequenceIdProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadU32()
	return err
}

func (p *MovieSceneSequenceIdProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteU32(p.Value)
}

func (p *MovieSceneTrackIdentifierProperty) TypeName() string { return "MovieSceneTrackIdentifier" }

func (p *MovieSceneTrackIdentifierProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadU32()
	return err
}

func (p *MovieSceneTrackIdentifierProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteU32(p.Value)
}

func (p *MovieSceneSegmentIdentifierProperty) TypeName() string { return "MovieSceneSegmentIdentifier" }

func (p *MovieSceneSegmentIdentifierProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	p.Value, err = r.ReadI32()
	return err
}

func (p *MovieSceneSegmentIdentifierProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 4, w.WriteI32(p.Value)
}

func (p *MovieSceneEvaluationKeyProperty) TypeName() string { return "MovieSceneEvaluationKey" }

func (p *MovieSceneEvaluationKeyProperty) read(r *uarchive.Reader, ctx Context) error {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	return readU32s(r, &p.SequenceID, &p.TrackIdentifier, &p.SectionIndex)
}

func (p *MovieSceneEvaluationKeyProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	return 12, writeU32s(w, p.SequenceID, p.TrackIdentifier, p.SectionIndex)
}

func (p *MovieSceneFrameRangeProperty) TypeName() string { return "MovieSceneFrameRange" }

func (p *MovieSceneFrameRangeProperty) read(r *uarchive.Reader, ctx Context) (err error) {
	if err := p.readGuid(r, ctx.IncludeHeader); err != nil {
		return err
	}
	if p.LowerBound, err = readFrameBound(r); err != nil {
		return err
	}
	p.UpperBound, err = readFrameBound(r)
	return err
}

func (p *MovieSceneFrameRangeProperty) write(w *uarchive.Writer, includeHeader bool) (int64, error) {
	if err := p.writeGuid(w, includeHeader); err != nil {
		return 0, err
	}
	if err := writeFrameBound(w, p.LowerBound); err != nil {
		return 0, err
	}
	return 10, writeFrameBound(w, p.UpperBound)
}
