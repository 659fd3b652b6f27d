package services

import (
	"bytes"
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"physique_backend/internal/classifier"
	"physique_backend/internal/engine"
	"physique_backend/internal/imageprocessor"
	"physique_backend/internal/logger"
	"physique_backend/internal/models"
	"physique_backend/internal/recommender"
	"physique_backend/internal/repositories"
	"physique_backend/internal/services/dto"
	"physique_backend/pkg/apperrors"
)

// AnalyzeViews are the three photo angles, in the order the gate
// reports them.
var AnalyzeViews = []string{"front", "back", "legs"}

// AnalyzeInput bundles one analysis request. Images are raw upload
// bytes in AnalyzeViews order. UserID is empty for anonymous requests.
type AnalyzeInput struct {
	Images      [][]byte
	Preferences dto.AnalyzePreferences
	UserID      string
}

type AnalysisService interface {
	Analyze(ctx context.Context, db *gorm.DB, in AnalyzeInput) (*dto.AnalyzeResponse, error)
}

type AnalysisServiceImpl struct {
	engine       *engine.Engine
	classifier   classifier.Classifier
	recommender  recommender.Recommender
	processor    *imageprocessor.Processor
	prefRepo     repositories.PreferenceRepository
	userRepo     repositories.UserRepository
	analysisRepo repositories.AnalysisRepository
}

func NewAnalysisService(
	eng *engine.Engine,
	cls classifier.Classifier,
	rec recommender.Recommender,
	processor *imageprocessor.Processor,
	prefRepo repositories.PreferenceRepository,
	userRepo repositories.UserRepository,
	analysisRepo repositories.AnalysisRepository,
) AnalysisService {
	return &AnalysisServiceImpl{
		engine:       eng,
		classifier:   cls,
		recommender:  rec,
		processor:    processor,
		prefRepo:     prefRepo,
		userRepo:     userRepo,
		analysisRepo: analysisRepo,
	}
}

// Analyze runs the full pipeline: normalize photos, classify each view,
// gate implausible uploads, score, select rules, synthesize plans and
// query the tabular recommender. Authenticated requests are persisted;
// a failed save is logged but never fails the request.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, db *gorm.DB, in AnalyzeInput) (*dto.AnalyzeResponse, error) {
	if len(in.Images) != len(AnalyzeViews) {
		return nil, apperrors.NewBadRequestError("Exactly three photos are required: front, back and legs")
	}

	raw := s.mergeStoredPreferences(db, in)
	prefs := engine.NormalizePreferences(raw)

	predictions := make([]engine.LabelProbabilities, 0, len(in.Images))
	for i, img := range in.Images {
		prepared, err := s.processor.Prepare(bytes.NewReader(img))
		if err != nil {
			return nil, apperrors.New(apperrors.CodeInvalidImage, "analysis",
				"The "+AnalyzeViews[i]+" photo could not be read as an image", 400)
		}

		preds, err := s.classifier.Predict(ctx, prepared)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, preds)
	}

	gate := s.engine.Policy.CheckViews(AnalyzeViews, predictions)
	if !gate.OK {
		logger.CtxWarn(ctx, "analysis rejected by plausibility gate",
			"reason", gate.Reason,
			"mean_top", gate.MeanTop,
		)
		return &dto.AnalyzeResponse{
			Valid:  false,
			Reason: gate.Reason,
			Views:  gate.Views,
		}, nil
	}

	combined := engine.Combine(predictions)
	result := s.engine.Analyze(combined, prefs)
	labels := s.recommend(ctx, prefs)

	resp := &dto.AnalyzeResponse{
		Valid:       true,
		Analysis:    &result.Analysis,
		WorkoutPlan: &result.WorkoutPlan,
		MealGuide:   &result.MealGuide,
		Recommender: &labels,
	}

	if in.UserID != "" && db != nil {
		if id, err := s.persist(db, in.UserID, resp); err != nil {
			logger.CtxWithError(ctx, "failed to persist analysis", err, "user_id", in.UserID)
		} else {
			resp.AnalysisID = id
		}
	}
	return resp, nil
}

// mergeStoredPreferences backfills request fields from the stored
// profile and preference rows. Request values always win.
func (s *AnalysisServiceImpl) mergeStoredPreferences(db *gorm.DB, in AnalyzeInput) engine.RawPreferences {
	raw := in.Preferences.Raw()
	if in.UserID == "" || db == nil {
		return raw
	}

	if user, err := s.userRepo.FindByID(db, in.UserID); err == nil {
		if raw.Gender == "" {
			raw.Gender = user.Gender
		}
		if raw.Goal == "" {
			raw.Goal = user.Goal
		}
	}
	pref, err := s.prefRepo.FindByUserID(db, in.UserID)
	if err != nil {
		return raw
	}
	if raw.Experience == "" {
		raw.Experience = pref.Experience
	}
	if raw.Equipment == "" {
		raw.Equipment = pref.Equipment
	}
	if raw.Time == "" {
		raw.Time = pref.TimePerWorkout
	}
	if raw.Weight <= 0 {
		raw.Weight = pref.Weight
	}
	if raw.ActivityLevel == "" {
		raw.ActivityLevel = pref.ActivityLevel
	}
	if raw.BMICategory == "" {
		raw.BMICategory = pref.BMICategory
	}
	return raw
}

// recommend queries the tabular model. Failures degrade to the
// "unavailable" sentinel instead of failing the analysis.
func (s *AnalysisServiceImpl) recommend(ctx context.Context, prefs engine.Preferences) dto.RecommenderLabels {
	labels, err := s.recommender.Recommend(ctx, recommender.Input{
		Gender:      prefs.Gender,
		Goal:        recommender.MapGoal(prefs.Goal),
		BMICategory: prefs.BMICategory,
	})
	if err != nil {
		logger.CtxWithError(ctx, "recommender unavailable, degrading", err)
		labels = recommender.UnavailableLabels()
	}
	return dto.RecommenderLabels{
		ExerciseSchedule: labels.ExerciseSchedule,
		MealPlan:         labels.MealPlan,
	}
}

func (s *AnalysisServiceImpl) persist(db *gorm.DB, userID string, resp *dto.AnalyzeResponse) (string, error) {
	analysisDoc, err := json.Marshal(resp.Analysis)
	if err != nil {
		return "", err
	}
	plansDoc, err := json.Marshal(map[string]interface{}{
		"workoutPlan": resp.WorkoutPlan,
		"mealGuide":   resp.MealGuide,
		"recommender": resp.Recommender,
	})
	if err != nil {
		return "", err
	}

	record := &models.Analysis{
		UserID:       userID,
		OverallScore: resp.Analysis.Rating.OverallScore,
		ChestScore:   resp.Analysis.Score(engine.MuscleChest),
		AbsScore:     resp.Analysis.Score(engine.MuscleAbs),
		ArmsScore:    resp.Analysis.Score(engine.MuscleArms),
		BackScore:    resp.Analysis.Score(engine.MuscleBack),
		LegsScore:    resp.Analysis.Score(engine.MuscleLegs),
		AnalysisJSON: datatypes.JSON(analysisDoc),
		PlansJSON:    datatypes.JSON(plansDoc),
	}
	if err := s.analysisRepo.Create(db, record); err != nil {
		return "", err
	}
	return record.ID, nil
}
