package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/models"
	"github.com/coursekit/assess-api/internal/repository"
)

// ResponseService records student answers.
type ResponseService interface {
	Submit(ctx context.Context, userID uint, payload dto.ResponseSubmitRequest) error
}

type responseService struct {
	responses repository.ResponseRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewResponseService constructs a ResponseService instance.
func NewResponseService(responses repository.ResponseRepository, validate *validator.Validate, logger zerolog.Logger) ResponseService {
	return &responseService{
		responses: responses,
		validator: validate,
		logger:    logger.With().Str("component", "response_service").Logger(),
		now:       time.Now,
	}
}

// Submit upserts the answer keyed by (user, question). A resubmission replaces
// the stored answer and refreshes the submission timestamp. The question is not
// resolved first; answers to unknown questions are accepted and simply never
// surface in a progress report.
func (s *responseService) Submit(ctx context.Context, userID uint, payload dto.ResponseSubmitRequest) error {
	tracer := otel.Tracer("github.com/coursekit/assess-api/internal/service/response")
	ctx, span := tracer.Start(ctx, "response.submit")
	span.SetAttributes(
		attribute.Int64("response.user_id", int64(userID)),
		attribute.Int64("response.question_id", int64(payload.QuestionID)),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return err
	}

	response := models.StudentResponse{
		UserID:        userID,
		QuestionID:    payload.QuestionID,
		StudentAnswer: payload.StudentAnswer,
		SubmittedAt:   s.now().UTC(),
	}

	if err := s.responses.Upsert(ctx, &response); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert_failed")
		return err
	}

	s.logger.Info().
		Uint("user_id", userID).
		Uint("question_id", payload.QuestionID).
		Msg("response recorded")

	return nil
}
