// Package wordvec stores pretrained word embeddings as a
// persistable table of word vectors.
package wordvec

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/anyvec/anyvecsave"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var t Table
	serializer.RegisterTypedDeserializer(t.SerializerType(), DeserializeTable)
}

// A Table maps words to fixed-length embedding vectors.
//
// The word order is meaningful: callers which need a
// stable row ordering (e.g. for nearest-neighbor decoding)
// can rely on the order in which words were passed to
// NewTable.
type Table struct {
	words   []string
	data    []float64
	dim     int
	wordIDs map[string]int
}

// NewTable creates a Table from a list of words and their
// corresponding vectors.
//
// All vectors must have the same, non-zero length, and
// every word must be unique.
func NewTable(words []string, vectors [][]float64) (*Table, error) {
	if len(words) != len(vectors) {
		return nil, fmt.Errorf("new table: %d words but %d vectors", len(words),
			len(vectors))
	}
	if len(words) == 0 {
		return nil, errors.New("new table: no words")
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, errors.New("new table: zero-length vectors")
	}
	res := &Table{
		words:   append([]string{}, words...),
		data:    make([]float64, 0, len(words)*dim),
		dim:     dim,
		wordIDs: map[string]int{},
	}
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("new table: vector %d has length %d (expected %d)",
				i, len(vec), dim)
		}
		if _, ok := res.wordIDs[words[i]]; ok {
			return nil, fmt.Errorf("new table: duplicate word: %s", words[i])
		}
		res.wordIDs[words[i]] = i
		res.data = append(res.data, vec...)
	}
	return res, nil
}

// DeserializeTable deserializes a Table.
func DeserializeTable(d []byte) (*Table, error) {
	var joined string
	var vecs *anyvecsave.S
	if err := serializer.DeserializeAny(d, &joined, &vecs); err != nil {
		return nil, essentials.AddCtx("deserialize Table", err)
	}
	words := strings.Split(joined, "\n")
	if len(words) == 0 || vecs.Vector.Len()%len(words) != 0 {
		return nil, errors.New("deserialize Table: invalid matrix dimensions")
	}
	res := &Table{
		words:   words,
		data:    vectorData(vecs.Vector.Data()),
		dim:     vecs.Vector.Len() / len(words),
		wordIDs: map[string]int{},
	}
	for i, w := range words {
		res.wordIDs[w] = i
	}
	return res, nil
}

// LoadTable loads a Table from a file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, essentials.AddCtx("load table", err)
	}
	obj, err := serializer.DeserializeWithType(data)
	if err != nil {
		return nil, essentials.AddCtx("load table", err)
	}
	table, ok := obj.(*Table)
	if !ok {
		return nil, fmt.Errorf("load table: not a Table: %T", obj)
	}
	return table, nil
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	return len(t.words)
}

// Dim returns the dimensionality of the vectors.
func (t *Table) Dim() int {
	return t.dim
}

// Word returns the i-th word in table order.
func (t *Table) Word(i int) string {
	return t.words[i]
}

// Row returns the vector for the i-th word in table
// order.
// The result should not be modified.
func (t *Table) Row(i int) []float64 {
	return t.data[i*t.dim : (i+1)*t.dim]
}

// Vector looks up the vector for a word.
// The second return value indicates whether the word is
// in the table.
func (t *Table) Vector(word string) ([]float64, bool) {
	i, ok := t.wordIDs[word]
	if !ok {
		return nil, false
	}
	return t.Row(i), true
}

// Save writes the table to a file.
func (t *Table) Save(path string) error {
	data, err := serializer.SerializeWithType(t)
	if err != nil {
		return essentials.AddCtx("save table", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return essentials.AddCtx("save table", err)
	}
	return nil
}

// SerializerType returns the unique ID used to serialize
// a Table with the serializer package.
func (t *Table) SerializerType() string {
	return "github.com/JingboWang1997/ConversationalHumor/humor/wordvec.Table"
}

// Serialize serializes the Table.
func (t *Table) Serialize() ([]byte, error) {
	c := anyvec32.CurrentCreator()
	vec := c.MakeVectorData(c.MakeNumericList(t.data))
	return serializer.SerializeAny(
		strings.Join(t.words, "\n"),
		&anyvecsave.S{Vector: vec},
	)
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
