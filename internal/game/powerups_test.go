package game

import (
	"strings"
	"testing"
)

func activeEngine(t *testing.T, word string) *Engine {
	t.Helper()
	e := NewEngine()
	if err := e.Start(word); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEffectsClosedSet(t *testing.T) {
	effects := Effects()
	for _, typ := range []PowerUpType{PowerUpScanner, PowerUpLuckyShot, PowerUpExtraLife, PowerUpSniper} {
		if effects[typ] == nil {
			t.Errorf("effect %q is not registered", typ)
		}
	}
	if len(effects) != 4 {
		t.Errorf("effects table has %d entries, expected 4", len(effects))
	}
}

func TestScannerEffect(t *testing.T) {
	e := activeEngine(t, "apple")

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no input", "", "Provide a vowel to scan for."},
		{"not a vowel", "k", "Scanner accepts a single vowel (A, E, I, O, U, Y)."},
		{"present vowel", "a", "A is present."},
		{"present vowel uppercase", "E", "E is present."},
		{"absent vowel", "u", "U is not present."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scannerEffect(e, tc.input); got != tc.want {
				t.Errorf("scanner(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLuckyShotEffect(t *testing.T) {
	e := activeEngine(t, "grape")

	info := luckyShotEffect(e, "")
	if !strings.HasPrefix(info, "Lucky Shot reveals position ") {
		t.Fatalf("unexpected message: %q", info)
	}
	// Сообщение должно раскрывать настоящую букву слова
	ok := false
	for i := 0; i < WordLength; i++ {
		letter, _ := e.LetterAt(i)
		if strings.HasSuffix(info, ": "+letter) {
			ok = true
		}
	}
	if !ok {
		t.Errorf("message %q does not reveal a letter of the target", info)
	}
}

func TestLuckyShotEffectInactive(t *testing.T) {
	e := NewEngine()
	if got := luckyShotEffect(e, ""); got != "Lucky Shot failed (round not active)." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestExtraLifeEffect(t *testing.T) {
	e := activeEngine(t, "apple")
	before := e.AttemptLimit()

	info := extraLifeEffect(e, "")
	if e.AttemptLimit() != before+1 {
		t.Fatalf("attempt limit = %d, expected %d", e.AttemptLimit(), before+1)
	}
	if info != "Extra attempt granted. Max attempts: 5." {
		t.Errorf("unexpected message: %q", info)
	}
}

func TestSniperEffect(t *testing.T) {
	e := activeEngine(t, "grape")
	if got := sniperEffect(e, ""); got != "First letter: G." {
		t.Errorf("unexpected message: %q", got)
	}

	idle := NewEngine()
	if got := sniperEffect(idle, ""); got != "First letter unavailable." {
		t.Errorf("unexpected message: %q", got)
	}
}
