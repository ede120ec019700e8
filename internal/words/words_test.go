package words

import "testing"

func TestDictionaryWordsAreValid(t *testing.T) {
	if Count() == 0 {
		t.Fatal("dictionary is empty")
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if len(w) != 5 {
			t.Errorf("word %q is not 5 letters", w)
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				t.Errorf("word %q contains non-letter %q", w, w[i])
			}
		}
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}
}

func TestRandomWordComesFromDictionary(t *testing.T) {
	for i := 0; i < 50; i++ {
		w := RandomWord()
		found := false
		for _, d := range words {
			if d == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomWord returned %q, not in dictionary", w)
		}
	}
}
