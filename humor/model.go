package humor

import (
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anydiff/anyseq"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyrnn"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var m Model
	serializer.RegisterTypedDeserializer(m.SerializerType(), DeserializeModel)
}

// A Mode determines what the model's output layer
// produces.
type Mode int

const (
	// Classification produces log-probabilities over the
	// vocabulary.
	Classification Mode = iota

	// Regression produces a vector in embedding space.
	Regression
)

// A Model predicts the next token from a fixed-size
// window of preceding token indices.
//
// Each timestep consumes a 1-dimensional input holding
// the raw token index, and the final LSTM output is fed
// through a linear projection.
type Model struct {
	NumInput int
	Mode     Mode
	Block    *anyrnn.LSTM
	Out      anynet.Net
}

// NewModel creates a randomized Model.
//
// In Classification mode, numOutputs is the vocabulary
// size; in Regression mode it is the embedding
// dimensionality.
func NewModel(c anyvec.Creator, numInput, hidden, numOutputs int, mode Mode) *Model {
	out := anynet.Net{anynet.NewFC(c, hidden, numOutputs)}
	if mode == Classification {
		out = append(out, anynet.LogSoftmax)
	}
	return &Model{
		NumInput: numInput,
		Mode:     mode,
		Block:    anyrnn.NewLSTM(c, 1, hidden),
		Out:      out,
	}
}

// DeserializeModel deserializes a Model.
func DeserializeModel(d []byte) (*Model, error) {
	var res Model
	var mode int
	err := serializer.DeserializeAny(d, &res.Block, &res.Out, &res.NumInput, &mode)
	if err != nil {
		return nil, essentials.AddCtx("deserialize Model", err)
	}
	res.Mode = Mode(mode)
	return &res, nil
}

// Apply runs the model on a batch of input windows,
// producing one output vector per sequence.
func (m *Model) Apply(seq anyseq.Seq) anydiff.Res {
	n := seq.Output()[0].NumPresent()
	return m.Out.Apply(anyseq.Tail(anyrnn.Map(seq, m.Block)), n)
}

// Predict runs the model on a single window of token
// indices and returns the output vector.
func (m *Model) Predict(window []int) []float64 {
	c := m.creator()
	seq := anyseq.ConstSeqList(c, [][]anyvec.Vector{indexVectors(c, window)})
	return vectorData(m.Apply(seq).Output().Data())
}

// Cost returns the cost function matching the model's
// mode: cross-entropy for Classification (via DotCost on
// the log-softmax output) and squared distance for
// Regression.
func (m *Model) Cost() anynet.Cost {
	if m.Mode == Classification {
		return anynet.DotCost{}
	}
	return anynet.MSE{}
}

// Parameters returns all learnable variables.
func (m *Model) Parameters() []*anydiff.Var {
	return anynet.AllParameters(m.Block, m.Out)
}

// SerializerType returns the unique ID used to serialize
// a Model with the serializer package.
func (m *Model) SerializerType() string {
	return "github.com/JingboWang1997/ConversationalHumor/humor.Model"
}

// Serialize serializes the Model.
func (m *Model) Serialize() ([]byte, error) {
	return serializer.SerializeAny(m.Block, m.Out, m.NumInput, int(m.Mode))
}

func (m *Model) creator() anyvec.Creator {
	return m.Block.InitLastOut.Vector.Creator()
}

// indexVectors wraps each token index in a 1-dimensional
// input vector.
func indexVectors(c anyvec.Creator, ids []int) []anyvec.Vector {
	res := make([]anyvec.Vector, len(ids))
	for i, id := range ids {
		res[i] = c.MakeVectorData(c.MakeNumericList([]float64{float64(id)}))
	}
	return res
}

func vectorData(data interface{}) []float64 {
	switch data := data.(type) {
	case []float64:
		return data
	case []float32:
		res := make([]float64, len(data))
		for i, x := range data {
			res[i] = float64(x)
		}
		return res
	default:
		panic(fmt.Sprintf("unsupported numeric list: %T", data))
	}
}
