package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"physique_backend/pkg/apperrors"
)

// Unavailable is the sentinel returned in place of a label when the
// recommender cannot be reached. Analysis requests still succeed; the
// response simply carries this value.
const Unavailable = "unavailable"

// Input is the tabular feature set the recommender model consumes.
type Input struct {
	Gender      string `json:"gender"`
	Goal        string `json:"goal"`
	BMICategory string `json:"bmiCategory"`
}

// Labels are the model's two categorical outputs.
type Labels struct {
	ExerciseSchedule string `json:"exerciseSchedule"`
	MealPlan         string `json:"mealPlan"`
}

// UnavailableLabels is what callers fall back to on recommender failure.
func UnavailableLabels() Labels {
	return Labels{ExerciseSchedule: Unavailable, MealPlan: Unavailable}
}

// Recommender predicts schedule and meal-plan labels from tabular
// profile features. Implementations must be safe for concurrent use.
type Recommender interface {
	Recommend(ctx context.Context, in Input) (Labels, error)
}

// HTTPRecommender calls the tabular model sidecar over HTTP.
type HTTPRecommender struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRecommender builds a client with the given base URL. A zero
// timeout falls back to 10s.
func NewHTTPRecommender(baseURL string, timeout time.Duration) *HTTPRecommender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPRecommender{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// goalByPreference maps engine goals onto the model's training labels.
var goalByPreference = map[string]string{
	"fat loss":    "Weight Loss",
	"muscle gain": "Muscle Gain",
}

// MapGoal translates a normalized engine goal into the label vocabulary
// the tabular model was trained on. Unknown goals become Maintenance.
func MapGoal(goal string) string {
	if mapped, ok := goalByPreference[goal]; ok {
		return mapped
	}
	return "Maintenance"
}

// Recommend posts the features as JSON and decodes the two labels.
func (r *HTTPRecommender) Recommend(ctx context.Context, in Input) (Labels, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return Labels{}, apperrors.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		return Labels{}, apperrors.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Labels{}, apperrors.ErrExternalService(err, "recommender", "Recommender is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Labels{}, apperrors.ErrExternalService(
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body),
			"recommender", "Recommender rejected the request")
	}

	var labels Labels
	if err := json.NewDecoder(resp.Body).Decode(&labels); err != nil {
		return Labels{}, apperrors.ErrExternalService(err, "recommender", "Recommender returned a malformed response")
	}
	if labels.ExerciseSchedule == "" || labels.MealPlan == "" {
		return Labels{}, apperrors.ErrExternalService(
			fmt.Errorf("missing labels in response"),
			"recommender", "Recommender returned a malformed response")
	}
	return labels, nil
}
