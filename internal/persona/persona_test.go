package persona

import (
	"math/rand"
	"testing"
)

func TestChooseDeterministicWithSeed(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		if got, want := Choose(r1, list), Choose(r2, list); got != want {
			t.Fatalf("same seed diverged at pick %d: %q vs %q", i, got, want)
		}
	}
}

func TestChooseCoversAllEntries(t *testing.T) {
	list := []string{"a", "b", "c"}
	r := rand.New(rand.NewSource(1))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Choose(r, list)] = true
	}
	for _, want := range list {
		if !seen[want] {
			t.Errorf("entry %q never chosen in 200 picks", want)
		}
	}
}

func TestChooseEmptyList(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if got := Choose(r, nil); got != "" {
		t.Errorf("Choose(nil) = %q, want empty", got)
	}
}
