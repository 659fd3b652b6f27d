package engine

import (
	"fmt"
	"math"
	"strings"
)

// MuscleScore is the score and notes for one muscle group.
type MuscleScore struct {
	Score         float64 `json:"score"`
	Strengths     string  `json:"strengths"`
	Weaknesses    string  `json:"weaknesses"`
	SymmetryNotes string  `json:"symmetryNotes"`
}

// PhysiqueRating is the overall score plus its summary text.
type PhysiqueRating struct {
	OverallScore float64 `json:"overallScore"`
	Summary      string  `json:"summary"`
}

// PhysiqueAnalysis is the full structured analysis for one request.
// Immutable once built.
type PhysiqueAnalysis struct {
	Rating         PhysiqueRating         `json:"physiqueRating"`
	PostureNotes   string                 `json:"postureNotes"`
	MuscleAnalysis map[Muscle]MuscleScore `json:"muscleAnalysis"`
}

// Score returns the score for one muscle (0 when absent).
func (a PhysiqueAnalysis) Score(m Muscle) float64 {
	return a.MuscleAnalysis[m].Score
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// ScoreMuscle converts one strong/weak probability pair into a MuscleScore.
// A tie (ps == pw) counts as strong.
func (p Policy) ScoreMuscle(m Muscle, pStrong, pWeak float64) MuscleScore {
	var score float64
	var strengths, weaknesses, symmetry string

	if pStrong >= pWeak {
		score = p.StrongBase + p.StrongGain*(pStrong-pWeak)
		score = math.Min(p.ScoreMax, score)
		strengths = fmt.Sprintf("%s looks relatively well-developed.", m.Title())
		weaknesses = fmt.Sprintf("Focus on fine-tuning %s size and symmetry.", m)
		symmetry = fmt.Sprintf("%s appears balanced overall.", m.Title())
	} else {
		score = p.WeakBase - p.WeakDrop*(pWeak-pStrong)
		score = math.Max(p.ScoreMin, score)
		strengths = fmt.Sprintf("%s has room to grow.", m.Title())
		weaknesses = fmt.Sprintf("%s appears under-developed compared with other areas.", m.Title())
		symmetry = fmt.Sprintf("Work on controlled technique to improve %s balance and definition.", m)
	}

	return MuscleScore{
		Score:         round1(score),
		Strengths:     strengths,
		Weaknesses:    weaknesses,
		SymmetryNotes: symmetry,
	}
}

// BuildAnalysis converts combined class probabilities into the structured
// analysis: five muscle scores, the overall rating and the posture note.
func (p Policy) BuildAnalysis(probs LabelProbabilities) PhysiqueAnalysis {
	muscleAnalysis := make(map[Muscle]MuscleScore, len(Muscles))
	var scores []float64
	var strongMuscles, weakMuscles []Muscle

	for _, m := range Muscles {
		ms := p.ScoreMuscle(m, probs[m.StrongLabel()], probs[m.WeakLabel()])
		muscleAnalysis[m] = ms
		scores = append(scores, ms.Score)

		if ms.Score >= p.StrongTagMin {
			strongMuscles = append(strongMuscles, m)
		}
		if ms.Score <= p.WeakTagMax {
			weakMuscles = append(weakMuscles, m)
		}
	}

	numMuscles := len(Muscles)
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(numMuscles)
	numStrong := len(strongMuscles)
	numWeak := len(weakMuscles)

	// Boost first: floor the overall by how many muscles are strong.
	overall := mean
	switch {
	case numStrong == numMuscles:
		overall = p.PerfectScore
	case numStrong >= 1:
		overall = math.Max(mean, p.BoostFloors[numStrong])
	}

	// Cap second: many weak muscles pull the overall down regardless of
	// any boost above.
	if numWeak >= p.WeakCapCount {
		overall = math.Min(overall, p.WeakCap)
	}

	overall = round1(overall)

	return PhysiqueAnalysis{
		Rating: PhysiqueRating{
			OverallScore: overall,
			Summary:      summaryText(numStrong, numMuscles, strongMuscles, weakMuscles),
		},
		PostureNotes:   postureNotes(weakMuscles),
		MuscleAnalysis: muscleAnalysis,
	}
}

func summaryText(numStrong, numMuscles int, strongMuscles, weakMuscles []Muscle) string {
	pctStrong := int(math.Round(100.0 * float64(numStrong) / float64(numMuscles)))

	switch {
	case numStrong == 0:
		return fmt.Sprintf(
			"%d of %d muscle groups are strong (%d%% strong). All groups are "+
				"currently in a moderate range; consistent training will turn them "+
				"into clear strengths.",
			numStrong, numMuscles, pctStrong)
	case numStrong == numMuscles:
		return fmt.Sprintf(
			"All %d muscle groups are strong (100%% strong). "+
				"This is a very well-balanced, advanced physique.",
			numMuscles)
	default:
		strongList := joinTitles(strongMuscles)
		if strongList == "" {
			strongList = "none yet"
		}
		weakList := joinTitles(weakMuscles)
		if weakList == "" {
			weakList = "mainly moderate groups"
		}
		return fmt.Sprintf(
			"%d of %d muscle groups are strong (%d%% strong). "+
				"Stronger areas: %s. Weaker focus areas: %s.",
			numStrong, numMuscles, pctStrong, strongList, weakList)
	}
}

// postureNotes depends only on whether back or abs landed in the weak set.
func postureNotes(weakMuscles []Muscle) string {
	for _, m := range weakMuscles {
		if m == MuscleBack || m == MuscleAbs {
			return "Posture may benefit from stronger core and back. " +
				"Focus on bracing your core and keeping shoulder blades pulled back " +
				"during standing and lifting."
		}
	}
	return "Posture appears generally solid. Maintain core engagement and neutral spine " +
		"during both daily activities and training."
}

func joinTitles(muscles []Muscle) string {
	titles := make([]string, 0, len(muscles))
	for _, m := range muscles {
		titles = append(titles, m.Title())
	}
	return strings.Join(titles, ", ")
}
