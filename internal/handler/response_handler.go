package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/service"
	"github.com/coursekit/assess-api/internal/utils"
)

// ResponseHandler wires the student response submission route.
type ResponseHandler struct {
	service service.ResponseService
	logger  zerolog.Logger
}

// NewResponseHandler constructs the handler.
func NewResponseHandler(service service.ResponseService, logger zerolog.Logger) *ResponseHandler {
	return &ResponseHandler{
		service: service,
		logger:  logger.With().Str("component", "response_handler").Logger(),
	}
}

// Register attaches the submission endpoint to the router group.
func (h *ResponseHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ResponseHandler) submit(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.ResponseSubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Submit(c.Context(), userID, payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
		}
		h.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to record response")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "response submitted", nil)
}
