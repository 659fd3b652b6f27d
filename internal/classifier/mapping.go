package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"physique_backend/internal/engine"
	"physique_backend/pkg/apperrors"
)

// ClassMapping is the ordered list of label names the classifier's
// output vector refers to. Index i of a probability vector belongs to
// label ClassMapping[i].
type ClassMapping []string

// LoadClassMapping reads the mapping JSON ({"0": "chest_strong", ...}).
// Callers treat any error as fatal; the service must not start with a
// missing or inconsistent mapping.
func LoadClassMapping(path string) (ClassMapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class mapping: %w", err)
	}

	var byIndex map[string]string
	if err := json.Unmarshal(raw, &byIndex); err != nil {
		return nil, fmt.Errorf("parse class mapping: %w", err)
	}
	if len(byIndex) == 0 {
		return nil, fmt.Errorf("class mapping %s is empty", path)
	}

	indexes := make([]int, 0, len(byIndex))
	for key := range byIndex {
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("class mapping: non-numeric index %q", key)
		}
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	mapping := make(ClassMapping, 0, len(indexes))
	for want, i := range indexes {
		if i != want {
			return nil, fmt.Errorf("class mapping: indexes are not contiguous, missing %d", want)
		}
		mapping = append(mapping, byIndex[strconv.Itoa(i)])
	}
	return mapping, nil
}

// ToProbabilities pairs a probability vector with the mapping's labels.
// A length mismatch means the model and the mapping are out of sync.
func (m ClassMapping) ToProbabilities(probs []float64) (engine.LabelProbabilities, error) {
	if len(probs) != len(m) {
		return nil, apperrors.ErrExternalService(
			fmt.Errorf("got %d probabilities for %d classes", len(probs), len(m)),
			"classifier", "Image classifier returned a malformed response")
	}
	out := make(engine.LabelProbabilities, len(m))
	for i, label := range m {
		out[label] = probs[i]
	}
	return out, nil
}
