package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/models"
	"github.com/coursekit/assess-api/internal/repository"
)

// ProgressService produces per-student progress reports for a course.
type ProgressService interface {
	Report(ctx context.Context, userID, courseID uint) ([]dto.AssessmentProgress, error)
}

type progressService struct {
	assessments repository.AssessmentRepository
	responses   repository.ResponseRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewProgressService builds the progress aggregator.
func NewProgressService(assessments repository.AssessmentRepository, responses repository.ResponseRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) ProgressService {
	return &progressService{
		assessments: assessments,
		responses:   responses,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "progress_service").Logger(),
		tracer:      otel.Tracer("github.com/coursekit/assess-api/internal/service/progress"),
	}
}

// Report joins the course's assessments and questions with the user's latest
// responses. Unanswered questions still appear, with nil answer and nil
// correctness; they reduce the percentage but are never counted as incorrect.
func (s *progressService) Report(ctx context.Context, userID, courseID uint) ([]dto.AssessmentProgress, error) {
	ctx, span := s.tracer.Start(ctx, "progress.report")
	span.SetAttributes(
		attribute.Int64("progress.user_id", int64(userID)),
		attribute.Int64("progress.course_id", int64(courseID)),
	)
	defer span.End()

	cacheKey := fmt.Sprintf("progress:user:%d:course:%d", userID, courseID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var report []dto.AssessmentProgress
			if unmarshalErr := json.Unmarshal([]byte(cached), &report); unmarshalErr == nil {
				span.SetAttributes(attribute.Bool("progress.cache_hit", true))
				s.logger.Debug().Uint("user_id", userID).Uint("course_id", courseID).Msg("progress cache hit")
				return report, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read progress cache")
		}
	}

	assessments, err := s.assessments.ListByCourse(ctx, courseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assessment_query_failed")
		return nil, err
	}

	responses, err := s.responses.ListByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "response_query_failed")
		return nil, err
	}

	report := buildReport(assessments, responses)

	if s.cache != nil {
		payload, err := json.Marshal(report)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store progress cache")
			}
		}
	}

	return report, nil
}

func buildReport(assessments []models.Assessment, responses []models.StudentResponse) []dto.AssessmentProgress {
	responseByQuestion := make(map[uint]models.StudentResponse, len(responses))
	for _, response := range responses {
		responseByQuestion[response.QuestionID] = response
	}

	report := make([]dto.AssessmentProgress, 0, len(assessments))
	for _, assessment := range assessments {
		questions := make([]dto.QuestionProgress, 0, len(assessment.Questions))
		score := dto.AssessmentScore{TotalQuestions: len(assessment.Questions)}

		for _, question := range assessment.Questions {
			item := dto.QuestionProgress{
				ID:            question.ID,
				Text:          question.Text,
				CorrectAnswer: question.CorrectAnswer,
				Type:          question.Type,
				Choices:       append(make([]string, 0, len(question.Choices)), question.Choices...),
			}
			if item.Type == "" {
				item.Type = models.QuestionTypeShortAnswer
			}

			if response, answered := responseByQuestion[question.ID]; answered {
				answer := response.StudentAnswer
				submittedAt := response.SubmittedAt
				correct := response.IsCorrectFor(question)

				item.StudentAnswer = &answer
				item.SubmittedAt = &submittedAt
				item.IsCorrect = &correct

				score.Answered++
				if correct {
					score.Correct++
				}
			}

			questions = append(questions, item)
		}

		if score.TotalQuestions > 0 {
			score.Percentage = float64(score.Correct) / float64(score.TotalQuestions) * 100
		}

		report = append(report, dto.AssessmentProgress{
			ID:        assessment.ID,
			Title:     assessment.Title,
			Questions: questions,
			Score:     score,
		})
	}

	return report
}
