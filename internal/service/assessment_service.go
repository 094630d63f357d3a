package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/models"
	"github.com/coursekit/assess-api/internal/repository"
)

// ErrCourseNotFound indicates the referenced course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// ErrInvalidQuestion indicates a multiple-choice question without at least two
// choices that include its correct answer.
var ErrInvalidQuestion = errors.New("multiple-choice questions must have at least two choices including the correct answer")

// AssessmentService exposes assessment authoring and retrieval use cases.
type AssessmentService interface {
	Create(ctx context.Context, payload dto.AssessmentCreateRequest) (dto.AssessmentCreatedResponse, error)
	ListByCourse(ctx context.Context, courseID uint) ([]dto.AssessmentResponse, error)
}

type assessmentService struct {
	assessments repository.AssessmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewAssessmentService builds a new assessment service.
func NewAssessmentService(assessments repository.AssessmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		courses:     courses,
		validator:   validate,
		logger:      logger.With().Str("component", "assessment_service").Logger(),
		tracer:      otel.Tracer("github.com/coursekit/assess-api/internal/service/assessment"),
	}
}

// Create validates the whole authoring payload before any write. The repository
// persists the assessment and its question batch in one transaction, so a
// failure never leaves a partial assessment behind.
func (s *assessmentService) Create(ctx context.Context, payload dto.AssessmentCreateRequest) (dto.AssessmentCreatedResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.create")
	span.SetAttributes(attribute.Int64("assessment.course_id", int64(payload.CourseID)))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.AssessmentCreatedResponse{}, err
	}

	questions := make([]models.Question, 0, len(payload.Questions))
	for _, input := range payload.Questions {
		question := models.Question{
			Text:          input.Text,
			CorrectAnswer: input.CorrectAnswer,
			Type:          input.Type,
			Choices:       input.Choices,
		}
		if question.Type == "" {
			question.Type = models.QuestionTypeShortAnswer
		}

		if !question.HasValidChoices() {
			span.SetStatus(codes.Error, "invalid_choices")
			return dto.AssessmentCreatedResponse{}, ErrInvalidQuestion
		}

		questions = append(questions, question)
	}

	exists, err := s.courses.Exists(ctx, payload.CourseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "course_lookup_failed")
		return dto.AssessmentCreatedResponse{}, err
	}
	if !exists {
		span.SetStatus(codes.Error, "course_not_found")
		return dto.AssessmentCreatedResponse{}, ErrCourseNotFound
	}

	assessment := models.Assessment{
		CourseID:  payload.CourseID,
		Title:     payload.Title,
		Questions: questions,
	}

	if err := s.assessments.CreateWithQuestions(ctx, &assessment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist_failed")
		return dto.AssessmentCreatedResponse{}, err
	}

	span.SetAttributes(attribute.Int64("assessment.id", int64(assessment.ID)))

	s.logger.Info().
		Uint("assessment_id", assessment.ID).
		Uint("course_id", assessment.CourseID).
		Int("questions", len(assessment.Questions)).
		Msg("assessment created")

	return dto.AssessmentCreatedResponse{AssessmentID: assessment.ID}, nil
}

func (s *assessmentService) ListByCourse(ctx context.Context, courseID uint) ([]dto.AssessmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.list")
	span.SetAttributes(attribute.Int64("assessment.course_id", int64(courseID)))
	defer span.End()

	assessments, err := s.assessments.ListByCourse(ctx, courseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_failed")
		return nil, err
	}

	return dto.NewAssessmentResponseSlice(assessments), nil
}
