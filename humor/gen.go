package humor

import (
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// A Generator produces sentences from a trained model by
// greedy autoregressive decoding.
type Generator struct {
	Model *Model
	Vocab *Vocab

	// Emb decodes Regression-mode predictions back to
	// vocabulary indices.
	// It may be nil in Classification mode.
	Emb *Embeddings

	// MaxLen bounds the number of decoding steps, so
	// generation terminates even if the end marker is never
	// predicted.
	MaxLen int

	// Rand is the randomness source for the seed token.
	// If nil, the global source is used.
	Rand *rand.Rand
}

// Sample decodes a sequence of vocabulary indices.
//
// The window is seeded with NumInput-1 start markers and
// one random non-marker token; decoding stops at the end
// marker or after MaxLen steps.
func (g *Generator) Sample() []int {
	startID, _ := g.Vocab.ID(StartToken)
	endID, _ := g.Vocab.ID(EndToken)

	ids := make([]int, 0, g.Model.NumInput+g.MaxLen)
	for i := 0; i < g.Model.NumInput-1; i++ {
		ids = append(ids, startID)
	}
	seed := startID
	for seed == startID || seed == endID {
		seed = g.intn(g.Vocab.Size())
	}
	ids = append(ids, seed)

	for i := 0; i < g.MaxLen; i++ {
		window := ids[len(ids)-g.Model.NumInput:]
		out := g.Model.Predict(window)

		var next int
		if g.Model.Mode == Regression {
			next = g.Emb.Nearest(out)
		} else {
			next = floats.MaxIdx(out)
		}
		if next == endID {
			break
		}
		ids = append(ids, next)
	}
	return ids
}

// Sentence decodes a sequence and renders it as a
// space-joined string with start markers stripped.
func (g *Generator) Sentence() string {
	var words []string
	startID, _ := g.Vocab.ID(StartToken)
	for _, id := range g.Sample() {
		if id != startID {
			words = append(words, g.Vocab.Token(id))
		}
	}
	return strings.Join(words, " ")
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}
