package humor

import (
	"github.com/unixpickle/anynet/anys2v"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// WindowSamples is the sliding-window view of a token
// stream: sample i pairs the numInput consecutive indices
// starting at offset i with the following index as the
// prediction target.
//
// Targets are one-hot vocabulary vectors in Classification
// mode and embedding vectors in Regression mode.
type WindowSamples struct {
	creator   anyvec.Creator
	ids       []int
	numInput  int
	vocabSize int
	mode      Mode
	emb       *Embeddings

	start int
	count int
}

// NewWindowSamples creates a WindowSamples over a token
// index stream.
//
// The emb argument is only used in Regression mode and
// may be nil otherwise.
func NewWindowSamples(c anyvec.Creator, ids []int, numInput, vocabSize int,
	mode Mode, emb *Embeddings) *WindowSamples {
	count := len(ids) - numInput
	if count < 0 {
		count = 0
	}
	return &WindowSamples{
		creator:   c,
		ids:       ids,
		numInput:  numInput,
		vocabSize: vocabSize,
		mode:      mode,
		emb:       emb,
		count:     count,
	}
}

// Len returns the number of windows.
func (w *WindowSamples) Len() int {
	return w.count
}

// Swap is not supported: windows overlap in the underlying
// stream and cannot be reordered.
// Training visits them strictly in corpus order.
func (w *WindowSamples) Swap(i, j int) {
	panic("window samples cannot be reordered")
}

// Slice returns a view of a subset of the windows.
func (w *WindowSamples) Slice(i, j int) anysgd.SampleList {
	res := *w
	res.start = w.start + i
	res.count = j - i
	return &res
}

// GetSample produces the training sample for window i.
func (w *WindowSamples) GetSample(i int) (*anys2v.Sample, error) {
	off := w.start + i
	in := indexVectors(w.creator, w.ids[off:off+w.numInput])
	next := w.ids[off+w.numInput]

	var target anyvec.Vector
	if w.mode == Regression {
		target = w.emb.Target(w.creator, next)
	} else {
		oneHot := make([]float64, w.vocabSize)
		oneHot[next] = 1
		target = w.creator.MakeVectorData(w.creator.MakeNumericList(oneHot))
	}
	return &anys2v.Sample{Input: in, Output: target}, nil
}
