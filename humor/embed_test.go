package humor

import (
	"reflect"
	"testing"

	"github.com/JingboWang1997/ConversationalHumor/humor/wordvec"
)

func testEmbeddings(t *testing.T) (*Embeddings, *Vocab) {
	table, err := wordvec.NewTable(
		[]string{UnknownToken, "hello", "outsider"},
		[][]float64{{0, 0}, {1, 2}, {5, 5}},
	)
	if err != nil {
		t.Fatal(err)
	}
	vocab := BuildVocab([]string{"hello", "hello", "world"})
	emb, err := IndexEmbeddings(table, vocab)
	if err != nil {
		t.Fatal(err)
	}
	return emb, vocab
}

func TestIndexEmbeddingsFallback(t *testing.T) {
	emb, vocab := testEmbeddings(t)
	if emb.Dim() != 2 {
		t.Fatalf("expected dim 2 but got %d", emb.Dim())
	}
	helloID, _ := vocab.ID("hello")
	if !reflect.DeepEqual(emb.Vector(helloID), []float64{1, 2}) {
		t.Errorf("unexpected vector for hello: %v", emb.Vector(helloID))
	}
	// "world" has no pretrained vector; it must get exactly
	// the unknown marker's vector.
	worldID, _ := vocab.ID("world")
	if !reflect.DeepEqual(emb.Vector(worldID), []float64{0, 0}) {
		t.Errorf("unexpected vector for world: %v", emb.Vector(worldID))
	}
	for id := 0; id < vocab.Size(); id++ {
		if emb.Vector(id) == nil {
			t.Errorf("index %d has no vector", id)
		}
	}
}

func TestIndexEmbeddingsNoUnknown(t *testing.T) {
	table, err := wordvec.NewTable([]string{"hello"}, [][]float64{{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := IndexEmbeddings(table, BuildVocab([]string{"hello"})); err == nil {
		t.Error("expected error for missing unknown vector")
	}
}

func TestEmbeddingsNearest(t *testing.T) {
	emb, vocab := testEmbeddings(t)
	helloID, _ := vocab.ID("hello")
	if got := emb.Nearest([]float64{1.1, 2.1}); got != helloID {
		t.Errorf("expected index %d but got %d", helloID, got)
	}
	unkID, _ := vocab.ID(UnknownToken)
	if got := emb.Nearest([]float64{-0.1, 0.1}); got != unkID {
		t.Errorf("expected index %d but got %d", unkID, got)
	}
	// "outsider" is in the table but not the vocabulary, so
	// it can never be decoded.
	if got := emb.Nearest([]float64{5, 5}); got != helloID {
		t.Errorf("expected index %d but got %d", helloID, got)
	}
}
