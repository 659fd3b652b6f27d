package engine

// Policy collects every scoring and selection constant in one place.
// These are tuning knobs, not derived quantities; changing them must not
// require touching control flow.
type Policy struct {
	// Per-muscle scoring. A muscle classified strong scores
	// StrongBase + StrongGain*(ps-pw); classified weak it scores
	// WeakBase - WeakDrop*(pw-ps). Both clamped into [ScoreMin, ScoreMax].
	StrongBase float64
	StrongGain float64
	WeakBase   float64
	WeakDrop   float64
	ScoreMin   float64
	ScoreMax   float64

	// Strong/weak tags over the rounded score. The tags drive overall
	// boosting/capping and target-muscle selection.
	StrongTagMin float64
	WeakTagMax   float64

	// Overall rating: floor applied per strong-muscle count (index =
	// numStrong, 1..4), exact PerfectScore for all five, then a hard cap
	// when at least WeakCapCount muscles are weak. Cap beats boost.
	BoostFloors  [5]float64
	PerfectScore float64
	WeakCapCount int
	WeakCap      float64

	// Rule-table strength_level thresholds. Deliberately different from
	// the strong/weak tag thresholds above; the tag picks which muscles
	// need rules, the level picks which row.
	LevelWeakBelow     float64
	LevelModerateBelow float64

	// Number of lowest-scoring muscles targeted when nothing is weak.
	FallbackTargets int

	// Image plausibility gate: every view's top probability must exceed
	// MinTopProbability and the mean of the per-view tops must exceed
	// MinMeanTopProbability.
	MinTopProbability     float64
	MinMeanTopProbability float64
}

// DefaultPolicy returns the production scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		StrongBase: 8.5,
		StrongGain: 1.5,
		WeakBase:   5.0,
		WeakDrop:   4.0,
		ScoreMin:   1.0,
		ScoreMax:   10.0,

		StrongTagMin: 8.5,
		WeakTagMax:   5.0,

		BoostFloors:  [5]float64{0, 6.0, 7.0, 8.0, 9.0},
		PerfectScore: 10.0,
		WeakCapCount: 4,
		WeakCap:      5.0,

		LevelWeakBelow:     4.0,
		LevelModerateBelow: 7.0,

		FallbackTargets: 3,

		MinTopProbability:     0.4,
		MinMeanTopProbability: 0.8,
	}
}
