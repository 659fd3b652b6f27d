package recommender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGoal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Weight Loss", MapGoal("fat loss"))
	assert.Equal(t, "Muscle Gain", MapGoal("muscle gain"))
	assert.Equal(t, "Maintenance", MapGoal("recomposition"))
	assert.Equal(t, "Maintenance", MapGoal(""))
}

func TestUnavailableLabels(t *testing.T) {
	t.Parallel()

	labels := UnavailableLabels()
	assert.Equal(t, Unavailable, labels.ExerciseSchedule)
	assert.Equal(t, Unavailable, labels.MealPlan)
}

func TestHTTPRecommender_Recommend(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommend", r.URL.Path)

		var in Input
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Muscle Gain", in.Goal)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exerciseSchedule":"Push/Pull/Legs","mealPlan":"High Protein"}`))
	}))
	defer srv.Close()

	r := NewHTTPRecommender(srv.URL, time.Second)

	labels, err := r.Recommend(context.Background(), Input{
		Gender: "male", Goal: MapGoal("muscle gain"), BMICategory: "normal",
	})
	require.NoError(t, err)

	assert.Equal(t, "Push/Pull/Legs", labels.ExerciseSchedule)
	assert.Equal(t, "High Protein", labels.MealPlan)
}

func TestHTTPRecommender_Recommend_MissingLabels(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"exerciseSchedule":"Push/Pull/Legs"}`))
	}))
	defer srv.Close()

	r := NewHTTPRecommender(srv.URL, time.Second)

	_, err := r.Recommend(context.Background(), Input{Goal: "Maintenance"})
	assert.Error(t, err)
}

func TestHTTPRecommender_Recommend_Unreachable(t *testing.T) {
	t.Parallel()

	r := NewHTTPRecommender("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := r.Recommend(context.Background(), Input{Goal: "Maintenance"})
	assert.Error(t, err)
}
