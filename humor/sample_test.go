package humor

import (
	"reflect"
	"testing"

	"github.com/JingboWang1997/ConversationalHumor/humor/wordvec"
	"github.com/unixpickle/anyvec/anyvec32"
)

func TestWindowSamplesClassification(t *testing.T) {
	c := anyvec32.CurrentCreator()
	samples := NewWindowSamples(c, []int{0, 1, 2, 3, 4}, 3, 5, Classification, nil)
	if samples.Len() != 2 {
		t.Fatalf("expected 2 windows but got %d", samples.Len())
	}

	sample, err := samples.GetSample(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sample.Input) != 3 {
		t.Fatalf("expected 3 inputs but got %d", len(sample.Input))
	}
	for i, want := range []float32{1, 2, 3} {
		got := sample.Input[i].Data().([]float32)
		if len(got) != 1 || got[0] != want {
			t.Errorf("input %d: expected [%f] but got %v", i, want, got)
		}
	}
	oneHot := sample.Output.Data().([]float32)
	if !reflect.DeepEqual(oneHot, []float32{0, 0, 0, 0, 1}) {
		t.Errorf("unexpected target: %v", oneHot)
	}
}

func TestWindowSamplesRegression(t *testing.T) {
	c := anyvec32.CurrentCreator()
	table, err := wordvec.NewTable(
		[]string{UnknownToken, "a"},
		[][]float64{{0, 0}, {1.5, -2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	vocab := BuildVocab([]string{"a", "a", "b"})
	emb, err := IndexEmbeddings(table, vocab)
	if err != nil {
		t.Fatal(err)
	}

	aID, _ := vocab.ID("a")
	bID, _ := vocab.ID("b")
	ids := []int{bID, bID, bID, aID}
	samples := NewWindowSamples(c, ids, 3, vocab.Size(), Regression, emb)

	sample, err := samples.GetSample(0)
	if err != nil {
		t.Fatal(err)
	}
	target := sample.Output.Data().([]float32)
	if !reflect.DeepEqual(target, []float32{1.5, -2}) {
		t.Errorf("unexpected target: %v", target)
	}
}

func TestWindowSamplesSlice(t *testing.T) {
	c := anyvec32.CurrentCreator()
	samples := NewWindowSamples(c, []int{0, 1, 2, 3, 4, 5}, 3, 6, Classification, nil)

	sub := samples.Slice(1, 3)
	if sub.Len() != 2 {
		t.Fatalf("expected 2 windows but got %d", sub.Len())
	}
	want, err := samples.GetSample(2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := sub.(*WindowSamples).GetSample(1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want.Output.Data(), got.Output.Data()) {
		t.Error("sliced sample differs from original")
	}
}

func TestWindowSamplesShortStream(t *testing.T) {
	c := anyvec32.CurrentCreator()
	samples := NewWindowSamples(c, []int{0, 1}, 3, 2, Classification, nil)
	if samples.Len() != 0 {
		t.Errorf("expected 0 windows but got %d", samples.Len())
	}
}
