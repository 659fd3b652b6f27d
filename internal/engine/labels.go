package engine

import "sort"

// Muscle is one of the five scored body regions.
type Muscle string

const (
	MuscleChest Muscle = "chest"
	MuscleAbs   Muscle = "abs"
	MuscleArms  Muscle = "arms"
	MuscleBack  Muscle = "back"
	MuscleLegs  Muscle = "legs"
)

// Muscles is the canonical ordering. Tie-breaks in target-muscle
// selection depend on this order, so it must stay stable.
var Muscles = []Muscle{MuscleChest, MuscleAbs, MuscleArms, MuscleBack, MuscleLegs}

// StrongLabel returns the classifier class name for the "strong" side.
func (m Muscle) StrongLabel() string { return string(m) + "_strong" }

// WeakLabel returns the classifier class name for the "weak" side.
func (m Muscle) WeakLabel() string { return string(m) + "_weak" }

// Title returns the muscle name with the first letter upper-cased,
// matching how muscles are rendered in summaries and plans.
func (m Muscle) Title() string {
	s := string(m)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// ClassLabels returns the ten recognized classifier labels in canonical order.
func ClassLabels() []string {
	labels := make([]string, 0, 2*len(Muscles))
	for _, m := range Muscles {
		labels = append(labels, m.StrongLabel(), m.WeakLabel())
	}
	return labels
}

// LabelProbabilities maps classifier class labels to probabilities in [0,1].
// The values do not sum to 1 across labels: each muscle is an independent
// strong-vs-weak pair, not one 10-way decision.
type LabelProbabilities map[string]float64

// Combine averages probabilities across views. Labels missing from a view
// contribute 0. With no views the result is the all-zero mapping.
func Combine(predictions []LabelProbabilities) LabelProbabilities {
	combined := make(LabelProbabilities, 2*len(Muscles))
	for _, label := range ClassLabels() {
		combined[label] = 0.0
	}
	if len(predictions) == 0 {
		return combined
	}
	for _, preds := range predictions {
		for label, p := range preds {
			combined[label] += p
		}
	}
	n := float64(len(predictions))
	for label := range combined {
		combined[label] /= n
	}
	return combined
}

// TopClass returns the highest-probability label, or ("none", 0) for an
// empty mapping. Known labels are scanned in canonical order and unknown
// labels in sorted order, so the result is deterministic.
func TopClass(preds LabelProbabilities) (string, float64) {
	if len(preds) == 0 {
		return "none", 0.0
	}

	known := ClassLabels()
	seen := make(map[string]bool, len(known))

	order := make([]string, 0, len(preds))
	for _, label := range known {
		if _, ok := preds[label]; ok {
			order = append(order, label)
			seen[label] = true
		}
	}
	var extra []string
	for label := range preds {
		if !seen[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	top := order[0]
	for _, label := range order[1:] {
		if preds[label] > preds[top] {
			top = label
		}
	}
	return top, preds[top]
}
