package humor

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCorpus(t *testing.T) {
	in := "hello world\n\nhello there\n"
	words, maxLen, err := ReadCorpus(strings.NewReader(in), 3)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		StartToken, StartToken, StartToken, "hello", "world", EndToken,
		StartToken, StartToken, StartToken, "hello", "there", EndToken,
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("expected %v but got %v", expected, words)
	}
	if maxLen != 2 {
		t.Errorf("expected max length 2 but got %d", maxLen)
	}
}

func TestBuildVocabBijection(t *testing.T) {
	words, _, err := ReadCorpus(strings.NewReader("hello world\nhello there"), 3)
	if err != nil {
		t.Fatal(err)
	}
	vocab := BuildVocab(words)
	if vocab.Size() != 6 {
		t.Errorf("expected 6 tokens but got %d", vocab.Size())
	}
	seen := map[string]bool{}
	for id := 0; id < vocab.Size(); id++ {
		tok := vocab.Token(id)
		if seen[tok] {
			t.Errorf("token %q has more than one index", tok)
		}
		seen[tok] = true
		if back, ok := vocab.ID(tok); !ok || back != id {
			t.Errorf("token %q: expected index %d but got %d (ok=%v)", tok, id,
				back, ok)
		}
	}
	for _, tok := range append(words, UnknownToken) {
		if !seen[tok] {
			t.Errorf("token %q missing from vocabulary", tok)
		}
	}
}

func TestBuildVocabRanking(t *testing.T) {
	vocab := BuildVocab([]string{"a", "a", "b"})
	aID, _ := vocab.ID("a")
	bID, _ := vocab.ID("b")
	if aID >= bID {
		t.Errorf("expected %q before %q but got indices %d and %d", "a", "b",
			aID, bID)
	}
}

func TestBuildVocabTieOrder(t *testing.T) {
	vocab := BuildVocab([]string{"x", "y", "x", "y", "z"})
	xID, _ := vocab.ID("x")
	yID, _ := vocab.ID("y")
	if xID >= yID {
		t.Errorf("tied tokens out of first-encounter order: x=%d y=%d", xID, yID)
	}
}

func TestBuildVocabEmpty(t *testing.T) {
	vocab := BuildVocab(nil)
	if vocab.Size() != 3 {
		t.Errorf("expected 3 marker tokens but got %d", vocab.Size())
	}
	for _, marker := range []string{StartToken, EndToken, UnknownToken} {
		if _, ok := vocab.ID(marker); !ok {
			t.Errorf("missing marker %q", marker)
		}
	}
}

func TestVocabIDsUnknown(t *testing.T) {
	vocab := BuildVocab([]string{"a"})
	unkID, _ := vocab.ID(UnknownToken)
	ids := vocab.IDs([]string{"a", "never-seen"})
	if ids[1] != unkID {
		t.Errorf("expected unknown index %d but got %d", unkID, ids[1])
	}
}
