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

func UploadFileAPI(c *fiber.Ctx) error {
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
	classID, err := strconv.ParseInt(c.FormValue("classId"), 10, 64)
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"classId": "must be a positive integer"},
		})
	}

	fileName := c.FormValue("fileName")
	if fileName == "" {
		fileName = file.Filename
	}

	saved, err := store.Save(file)
	if err != nil {
		log.Error().Err(err).Str("file", file.Filename).Msg("Failed to store upload")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload file"})
	}

	upload := &models.FileUpload{
		FilePath: c.BaseURL() + "/public" + saved.PublicPath,
		FileType: c.FormValue("fileType"),
		FileName: fileName,
		UserID:   userID,
		ClassID:  classID,
	}

	if err := database.CreateFileUpload(config.GetDB(), upload); err != nil {
		// keep the disk consistent with the store
		if rmErr := store.Remove(saved.StoredName); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", saved.StoredName).Msg("Failed to remove orphaned upload")
		}
		log.Error().Err(err).Int64("class_id", classID).Msg("Failed to record upload")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload file"})
	}

	return c.Status(201).JSON(upload)
}

func GetFilesAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	files, err := database.GetFilesByClass(config.GetDB(), int64(classID))
	if err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to fetch files")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch files"})
	}
	if files == nil {
		files = []*models.FileUpload{}
	}

	return c.JSON(fiber.Map{
		"files": files,
		"count": len(files),
	})
}

func AddCommentAPI(c *fiber.Ctx) error {
	fileID, err := c.ParamsInt("fileId")
	if err != nil || fileID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid file ID"})
	}

	type AddCommentRequest struct {
		Content  string `json:"content" validate:"required"`
		AuthorID int64  `json:"authorId" validate:"required,gt=0"`
	}

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	comment := &models.Comment{
		Content:  req.Content,
		FileID:   int64(fileID),
		AuthorID: req.AuthorID,
	}

	if err := database.CreateComment(config.GetDB(), comment); err != nil {
		log.Error().Err(err).Int("file_id", fileID).Msg("Failed to add comment")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add comment"})
	}

	return c.Status(201).JSON(comment)
}

func GetCommentsAPI(c *fiber.Ctx) error {
	fileID, err := c.ParamsInt("fileId")
	if err != nil || fileID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid file ID"})
	}

	comments, err := database.GetCommentsByFile(config.GetDB(), int64(fileID))
	if err != nil {
		log.Error().Err(err).Int("file_id", fileID).Msg("Failed to fetch comments")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch comments"})
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(fiber.Map{
		"comments": comments,
		"count":    len(comments),
	})
}
