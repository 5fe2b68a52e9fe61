package humor

import (
	"fmt"

	"github.com/JingboWang1997/ConversationalHumor/humor/wordvec"
	"github.com/unixpickle/anyvec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Embeddings associates every vocabulary index with a
// pretrained word vector, falling back to the unknown
// marker's vector for out-of-table words.
//
// It also keeps the in-vocabulary rows of the table in
// table order, so that a predicted vector can be decoded
// back to a vocabulary index by nearest-neighbor search.
type Embeddings struct {
	dim   int
	vecs  [][]float64
	rows  *mat.Dense
	order []int
}

// IndexEmbeddings builds Embeddings covering every index
// of the vocabulary.
//
// The table must contain a vector for the unknown marker;
// otherwise the load is unrecoverable and an error is
// returned.
func IndexEmbeddings(table *wordvec.Table, vocab *Vocab) (*Embeddings, error) {
	unknown, ok := table.Vector(UnknownToken)
	if !ok {
		return nil, fmt.Errorf("index embeddings: table has no vector for %s",
			UnknownToken)
	}
	res := &Embeddings{
		dim:  table.Dim(),
		vecs: make([][]float64, vocab.Size()),
	}
	for id := range res.vecs {
		if vec, ok := table.Vector(vocab.Token(id)); ok {
			res.vecs[id] = vec
		} else {
			res.vecs[id] = unknown
		}
	}

	var rowData []float64
	for i := 0; i < table.Len(); i++ {
		if id, ok := vocab.ID(table.Word(i)); ok {
			rowData = append(rowData, table.Row(i)...)
			res.order = append(res.order, id)
		}
	}
	res.rows = mat.NewDense(len(res.order), res.dim, rowData)
	return res, nil
}

// Dim returns the dimensionality of the vectors.
func (e *Embeddings) Dim() int {
	return e.dim
}

// Vector returns the vector for a vocabulary index.
// The result should not be modified.
func (e *Embeddings) Vector(id int) []float64 {
	return e.vecs[id]
}

// Target produces the training target vector for a
// vocabulary index.
func (e *Embeddings) Target(c anyvec.Creator, id int) anyvec.Vector {
	return c.MakeVectorData(c.MakeNumericList(e.vecs[id]))
}

// Nearest returns the vocabulary index whose table vector
// has the smallest Euclidean distance to pred.
func (e *Embeddings) Nearest(pred []float64) int {
	bestRow := 0
	bestDist := floats.Distance(e.rows.RawRowView(0), pred, 2)
	for i := 1; i < len(e.order); i++ {
		if d := floats.Distance(e.rows.RawRowView(i), pred, 2); d < bestDist {
			bestDist = d
			bestRow = i
		}
	}
	return e.order[bestRow]
}
