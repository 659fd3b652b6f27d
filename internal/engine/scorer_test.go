package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// probs builds a combined probability map where every muscle in strong
// gets (ps, pw) and every other muscle gets the weak pair (wps, wpw).
func probs(strong []Muscle, ps, pw, wps, wpw float64) LabelProbabilities {
	isStrong := make(map[Muscle]bool, len(strong))
	for _, m := range strong {
		isStrong[m] = true
	}
	out := make(LabelProbabilities, 10)
	for _, m := range Muscles {
		if isStrong[m] {
			out[m.StrongLabel()] = ps
			out[m.WeakLabel()] = pw
		} else {
			out[m.StrongLabel()] = wps
			out[m.WeakLabel()] = wpw
		}
	}
	return out
}

func TestScoreMuscle(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name    string
		pStrong float64
		pWeak   float64
		want    float64
	}{
		{"tie counts as strong", 0.5, 0.5, 8.5},
		{"clear strong", 0.9, 0.1, 9.7},
		{"strong clamped to max", 1.0, 0.0, 10.0},
		{"clear weak", 0.1, 0.9, 1.8},
		{"weak clamped to min", 0.0, 1.0, 1.0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ms := p.ScoreMuscle(MuscleChest, tt.pStrong, tt.pWeak)
			assert.Equal(t, tt.want, ms.Score)
		})
	}
}

func TestScoreMuscle_Notes(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	strong := p.ScoreMuscle(MuscleBack, 0.9, 0.1)
	assert.Contains(t, strong.Strengths, "Back looks relatively well-developed")
	assert.Contains(t, strong.SymmetryNotes, "Back appears balanced")

	weak := p.ScoreMuscle(MuscleLegs, 0.1, 0.9)
	assert.Contains(t, weak.Weaknesses, "Legs appears under-developed")
}

func TestBuildAnalysis_AllStrong(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	analysis := p.BuildAnalysis(probs(Muscles, 1.0, 0.0, 0, 0))

	assert.Equal(t, 10.0, analysis.Rating.OverallScore)
	assert.Contains(t, analysis.Rating.Summary, "All 5 muscle groups are strong")
	assert.Contains(t, analysis.PostureNotes, "generally solid")
	assert.Len(t, analysis.MuscleAnalysis, 5)
}

func TestBuildAnalysis_AllWeakMeansNoBoost(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// Every muscle scores 5 - 4*0.2 = 4.2.
	analysis := p.BuildAnalysis(probs(nil, 0, 0, 0.2, 0.4))

	assert.Equal(t, 4.2, analysis.Rating.OverallScore)
	assert.Contains(t, analysis.Rating.Summary, "0 of 5 muscle groups are strong (0% strong)")
	// Back and abs are weak, so the posture note flags the core.
	assert.Contains(t, analysis.PostureNotes, "stronger core and back")
}

func TestBuildAnalysis_BoostFloors(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// Chest and abs strong at 9.7, the rest weak at 1.8. The raw mean is
	// 4.96 but two strong muscles floor the overall at 7.0.
	analysis := p.BuildAnalysis(probs([]Muscle{MuscleChest, MuscleAbs}, 0.9, 0.1, 0.1, 0.9))

	assert.Equal(t, 7.0, analysis.Rating.OverallScore)
	assert.Contains(t, analysis.Rating.Summary, "2 of 5 muscle groups are strong (40% strong)")
	assert.Contains(t, analysis.Rating.Summary, "Chest, Abs")
}

func TestBuildAnalysis_FourStrongFloorsAtNine(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// Four ties at 8.5 plus one weak 1.8: mean 7.16, floored at 9.0.
	strong := []Muscle{MuscleChest, MuscleAbs, MuscleArms, MuscleBack}
	analysis := p.BuildAnalysis(probs(strong, 0.5, 0.5, 0.1, 0.9))

	assert.Equal(t, 9.0, analysis.Rating.OverallScore)
}

func TestBuildAnalysis_WeakCapBeatsBoost(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// One strong muscle floors the overall at 6.0, but four weak muscles
	// cap it back down to 5.0.
	analysis := p.BuildAnalysis(probs([]Muscle{MuscleChest}, 0.9, 0.1, 0.1, 0.9))

	assert.Equal(t, 5.0, analysis.Rating.OverallScore)
}

func TestBuildAnalysis_EmptyProbabilities(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// All probabilities zero: every pair ties, so every muscle scores the
	// strong base and the overall is perfect.
	analysis := p.BuildAnalysis(LabelProbabilities{})

	for _, m := range Muscles {
		assert.Equal(t, 8.5, analysis.Score(m))
	}
	assert.Equal(t, 10.0, analysis.Rating.OverallScore)
}
