package classrooms

import (
	"strconv"

	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func CreateAssignmentAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	type CreateAssignmentRequest struct {
		Title       string  `json:"title" validate:"required"`
		Description *string `json:"description"`
		CreatedBy   int64   `json:"createdBy" validate:"required,gt=0"`
		FileID      *int64  `json:"fileId" validate:"omitempty,gt=0"`
	}

	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		ClassID:     int64(classID),
		CreatedBy:   req.CreatedBy,
		FileID:      req.FileID,
	}

	if err := database.CreateAssignment(config.GetDB(), assignment); err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to create assignment")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return c.Status(201).JSON(fiber.Map{"assignment": assignment})
}

func GetAssignmentsAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	assignments, err := database.GetAssignmentsByClass(config.GetDB(), int64(classID), int64(userID))
	if err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to fetch assignments")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}
	if assignments == nil {
		assignments = []*models.Assignment{}
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func SubmitAssignmentAPI(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("assignmentId")
	if err != nil || assignmentID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"file": "is required"},
		})
	}

	userID, err := strconv.ParseInt(c.FormValue("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"userId": "must be a positive integer"},
		})
	}

	saved, err := store.Save(file)
	if err != nil {
		log.Error().Err(err).Str("file", file.Filename).Msg("Failed to store submission")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit assignment"})
	}

	sub := &models.Submission{
		AssignmentID: int64(assignmentID),
		UserID:       userID,
		FileName:     file.Filename,
		FilePath:     c.BaseURL() + "/public" + saved.PublicPath,
	}

	if err := database.CreateSubmission(config.GetDB(), sub); err != nil {
		if rmErr := store.Remove(saved.StoredName); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", saved.StoredName).Msg("Failed to remove orphaned submission file")
		}
		log.Error().Err(err).Int("assignment_id", assignmentID).Msg("Failed to record submission")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit assignment"})
	}

	return c.Status(201).JSON(fiber.Map{"submission": sub})
}

func GetSubmissionsAPI(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("assignmentId")
	if err != nil || assignmentID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}

	subs, err := database.GetSubmissionsByAssignment(config.GetDB(), int64(assignmentID))
	if err != nil {
		log.Error().Err(err).Int("assignment_id", assignmentID).Msg("Failed to fetch submissions")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}
	if subs == nil {
		subs = []*models.Submission{}
	}

	return c.JSON(fiber.Map{
		"submissions": subs,
		"count":       len(subs),
	})
}
