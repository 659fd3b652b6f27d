package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine_NoViews(t *testing.T) {
	t.Parallel()

	combined := Combine(nil)

	assert.Len(t, combined, 10)
	for _, label := range ClassLabels() {
		assert.Equal(t, 0.0, combined[label])
	}
}

func TestCombine_AveragesAcrossViews(t *testing.T) {
	t.Parallel()

	views := []LabelProbabilities{
		{"chest_strong": 0.8, "abs_weak": 0.4},
		{"chest_strong": 0.4},
	}

	combined := Combine(views)

	assert.InDelta(t, 0.6, combined["chest_strong"], 1e-9)
	// abs_weak missing from the second view counts as 0 there.
	assert.InDelta(t, 0.2, combined["abs_weak"], 1e-9)
	assert.Equal(t, 0.0, combined["legs_strong"])
}

func TestTopClass_Empty(t *testing.T) {
	t.Parallel()

	label, prob := TopClass(nil)

	assert.Equal(t, "none", label)
	assert.Equal(t, 0.0, prob)
}

func TestTopClass_PicksHighest(t *testing.T) {
	t.Parallel()

	label, prob := TopClass(LabelProbabilities{
		"chest_strong": 0.2,
		"back_weak":    0.7,
		"legs_strong":  0.1,
	})

	assert.Equal(t, "back_weak", label)
	assert.InDelta(t, 0.7, prob, 1e-9)
}

func TestTopClass_TieIsDeterministic(t *testing.T) {
	t.Parallel()

	preds := LabelProbabilities{
		"legs_weak":    0.5,
		"chest_strong": 0.5,
	}

	// chest_strong precedes legs_weak in canonical order, so it must win
	// the tie every time.
	for i := 0; i < 20; i++ {
		label, _ := TopClass(preds)
		assert.Equal(t, "chest_strong", label)
	}
}

func TestClassLabels_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"chest_strong", "chest_weak",
		"abs_strong", "abs_weak",
		"arms_strong", "arms_weak",
		"back_strong", "back_weak",
		"legs_strong", "legs_weak",
	}, ClassLabels())
}
