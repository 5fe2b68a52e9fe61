// Package humor trains a word-level LSTM language model on
// a corpus of one-line sentences and generates new
// sentences from it.
package humor

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/unixpickle/essentials"
)

// Synthetic marker tokens.
// Start markers pad the window at the beginning of each
// sentence, the end marker terminates it, and the unknown
// marker stands in for words with no pretrained embedding.
const (
	StartToken   = "<start>"
	EndToken     = "<end>"
	UnknownToken = "<unk>"
)

// ReadCorpus reads a corpus with one sentence per line,
// skipping blank lines.
//
// Each sentence is preceded by numInput start markers and
// followed by one end marker, and the result is the
// flattened token stream.
//
// The second return value is the token count of the
// longest sentence, used as a generation length bound.
// It is at least 1.
func ReadCorpus(r io.Reader, numInput int) ([]string, int, error) {
	var words []string
	maxLen := 1
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		for i := 0; i < numInput; i++ {
			words = append(words, StartToken)
		}
		words = append(words, fields...)
		words = append(words, EndToken)
		if len(fields) > maxLen {
			maxLen = len(fields)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, essentials.AddCtx("read corpus", err)
	}
	return words, maxLen, nil
}

// A Vocab is a bijective mapping between tokens and dense
// indices, ranked by descending corpus frequency.
type Vocab struct {
	tokens []string
	ids    map[string]int
}

// BuildVocab builds a Vocab from a token stream.
//
// Tokens are ranked by descending frequency; ties keep
// their first-encountered order.
// The three synthetic markers are always included, even if
// they never occur in the stream.
func BuildVocab(words []string) *Vocab {
	counts := map[string]int{}
	var order []string
	for _, w := range words {
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}
	for _, marker := range []string{StartToken, EndToken, UnknownToken} {
		if _, ok := counts[marker]; !ok {
			counts[marker] = 0
			order = append(order, marker)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	res := &Vocab{
		tokens: order,
		ids:    make(map[string]int, len(order)),
	}
	for i, tok := range order {
		res.ids[tok] = i
	}
	return res
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocab) Size() int {
	return len(v.tokens)
}

// ID looks up the index for a token.
// The second return value indicates whether the token is
// in the vocabulary.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Token returns the token for an index.
// It panics if the index is out of range.
func (v *Vocab) Token(id int) string {
	return v.tokens[id]
}

// IDs converts a token stream to indices, substituting
// the unknown marker's index for out-of-vocabulary
// tokens.
func (v *Vocab) IDs(words []string) []int {
	res := make([]int, len(words))
	for i, w := range words {
		if id, ok := v.ids[w]; ok {
			res[i] = id
		} else {
			res[i] = v.ids[UnknownToken]
		}
	}
	return res
}
