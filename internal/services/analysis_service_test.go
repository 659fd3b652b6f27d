package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physique_backend/internal/engine"
	"physique_backend/internal/imageprocessor"
	"physique_backend/internal/recommender"
	"physique_backend/internal/repositories"
	"physique_backend/internal/services/dto"
)

type stubClassifier struct {
	preds []engine.LabelProbabilities
	calls int
}

func (s *stubClassifier) Predict(_ context.Context, _ []byte) (engine.LabelProbabilities, error) {
	p := s.preds[s.calls%len(s.preds)]
	s.calls++
	return p, nil
}

type stubRecommender struct {
	labels recommender.Labels
	err    error
}

func (s *stubRecommender) Recommend(_ context.Context, _ recommender.Input) (recommender.Labels, error) {
	return s.labels, s.err
}

func testImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 90, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// confident returns per-view predictions where chest is clearly strong
// and legs clearly weak, all with a plausible top probability.
func confident() engine.LabelProbabilities {
	return engine.LabelProbabilities{
		"chest_strong": 0.9, "chest_weak": 0.1,
		"abs_strong": 0.9, "abs_weak": 0.1,
		"arms_strong": 0.9, "arms_weak": 0.1,
		"back_strong": 0.9, "back_weak": 0.1,
		"legs_strong": 0.1, "legs_weak": 0.9,
	}
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	table, err := engine.NewRuleTable([]engine.PlanRule{
		{
			ID: 1, MuscleGroup: "legs", StrengthLevel: "weak",
			Goal: "muscle gain", Experience: "beginner", Equipment: "gym", TimeSlot: "30-45",
			OverallMin: 1, OverallMax: 10,
			WorkoutTitle: "Beginner Legs - Muscle Gain (v1)",
			MealTitle:    "Muscle Gain Meal Plan (v1)",
		},
	})
	require.NoError(t, err)
	return engine.NewEngine(table)
}

func newTestService(t *testing.T, cls *stubClassifier, rec *stubRecommender) AnalysisService {
	t.Helper()
	return NewAnalysisService(
		testEngine(t),
		cls,
		rec,
		imageprocessor.NewProcessor(85),
		repositories.NewPreferenceRepository(),
		repositories.NewUserRepository(),
		repositories.NewAnalysisRepository(),
	)
}

func threeImages(t *testing.T) [][]byte {
	img := testImage(t)
	return [][]byte{img, img, img}
}

func TestAnalyze_AnonymousHappyPath(t *testing.T) {
	t.Parallel()

	cls := &stubClassifier{preds: []engine.LabelProbabilities{confident()}}
	rec := &stubRecommender{labels: recommender.Labels{
		ExerciseSchedule: "Push/Pull/Legs", MealPlan: "High Protein",
	}}
	svc := newTestService(t, cls, rec)

	resp, err := svc.Analyze(context.Background(), nil, AnalyzeInput{
		Images: threeImages(t),
		Preferences: dto.AnalyzePreferences{
			Goal: "muscle gain", Weight: 70, ActivityLevel: "moderately active",
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.AnalysisID, "anonymous requests are not persisted")
	assert.Equal(t, 3, cls.calls)

	require.NotNil(t, resp.Analysis)
	assert.Equal(t, 1.8, resp.Analysis.MuscleAnalysis[engine.MuscleLegs].Score)

	require.NotNil(t, resp.WorkoutPlan)
	require.Len(t, resp.WorkoutPlan.Plan, 1)
	assert.Equal(t, "Legs", resp.WorkoutPlan.Plan[0].TargetMuscle)

	require.NotNil(t, resp.MealGuide)
	assert.Equal(t, 3906, resp.MealGuide.DailyCalorieTarget)

	require.NotNil(t, resp.Recommender)
	assert.Equal(t, "Push/Pull/Legs", resp.Recommender.ExerciseSchedule)
}

func TestAnalyze_RecommenderFailureDegrades(t *testing.T) {
	t.Parallel()

	cls := &stubClassifier{preds: []engine.LabelProbabilities{confident()}}
	rec := &stubRecommender{err: errors.New("connection refused")}
	svc := newTestService(t, cls, rec)

	resp, err := svc.Analyze(context.Background(), nil, AnalyzeInput{Images: threeImages(t)})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Recommender)
	assert.Equal(t, recommender.Unavailable, resp.Recommender.ExerciseSchedule)
	assert.Equal(t, recommender.Unavailable, resp.Recommender.MealPlan)
}

func TestAnalyze_ImplausibleUploadRejected(t *testing.T) {
	t.Parallel()

	// Top probabilities far below the per-view bar.
	lowConfidence := engine.LabelProbabilities{
		"chest_strong": 0.15, "chest_weak": 0.1,
	}
	cls := &stubClassifier{preds: []engine.LabelProbabilities{lowConfidence}}
	svc := newTestService(t, cls, &stubRecommender{})

	resp, err := svc.Analyze(context.Background(), nil, AnalyzeInput{Images: threeImages(t)})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Reason, "could not be recognized")
	assert.Len(t, resp.Views, 3)
	assert.Nil(t, resp.Analysis)
	assert.Nil(t, resp.WorkoutPlan)
}

func TestAnalyze_WrongImageCount(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubClassifier{preds: []engine.LabelProbabilities{confident()}}, &stubRecommender{})

	_, err := svc.Analyze(context.Background(), nil, AnalyzeInput{
		Images: [][]byte{testImage(t)},
	})
	assert.Error(t, err)
}

func TestAnalyze_UndecodableImage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubClassifier{preds: []engine.LabelProbabilities{confident()}}, &stubRecommender{})

	_, err := svc.Analyze(context.Background(), nil, AnalyzeInput{
		Images: [][]byte{[]byte("junk"), []byte("junk"), []byte("junk")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "front photo")
}
