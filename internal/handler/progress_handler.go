package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/coursekit/assess-api/internal/service"
	"github.com/coursekit/assess-api/internal/utils"
)

// ProgressHandler exposes the per-course progress report endpoint.
type ProgressHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewProgressHandler creates a new handler instance.
func NewProgressHandler(service service.ProgressService, logger zerolog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger.With().Str("component", "progress_handler").Logger(),
	}
}

// Register attaches the progress endpoint to the router group.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Get("/:courseId", h.report)
}

func (h *ProgressHandler) report(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.service.Report(c.Context(), userID, courseID)
	if err != nil {
		h.logger.Error().Err(err).Uint("user_id", userID).Uint("course_id", courseID).Msg("failed to load progress")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch progress")
	}

	return utils.SendSuccess(c, "progress retrieved", report)
}
