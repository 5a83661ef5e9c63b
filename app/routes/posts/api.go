package posts

import (
	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func CreatePostAPI(c *fiber.Ctx) error {
	type CreatePostRequest struct {
		Title       string          `json:"title" validate:"required"`
		Content     string          `json:"content" validate:"required"`
		ClassRoomID int64           `json:"classRoomId" validate:"required,gt=0"`
		AuthorID    int64           `json:"authorId" validate:"required,gt=0"`
		PostType    models.PostType `json:"postType" validate:"required,oneof=ASSIGNMENT MESSAGE"`
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		ClassRoomID: req.ClassRoomID,
		AuthorID:    req.AuthorID,
		PostType:    req.PostType,
	}

	if err := database.CreatePost(config.GetDB(), post); err != nil {
		log.Error().Err(err).Int64("class_room_id", req.ClassRoomID).Msg("Failed to create post")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create post"})
	}

	return c.Status(201).JSON(post)
}

func GetPostsAPI(c *fiber.Ctx) error {
	classRoomID, err := c.ParamsInt("classRoomId")
	if err != nil || classRoomID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid classroom ID"})
	}

	postList, err := database.GetPostsByClassRoom(config.GetDB(), int64(classRoomID))
	if err != nil {
		log.Error().Err(err).Int("class_room_id", classRoomID).Msg("Failed to fetch posts")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch posts"})
	}
	if postList == nil {
		postList = []*models.Post{}
	}

	return c.JSON(fiber.Map{
		"posts": postList,
		"count": len(postList),
	})
}
