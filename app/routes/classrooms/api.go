package classrooms

import (
	"database/sql"

	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func CreateClassroomAPI(c *fiber.Ctx) error {
	type CreateClassroomRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
		CreatorID   int64  `json:"creatorId" validate:"required,gt=0"`
	}

	var req CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	room := &models.ClassRoom{
		Name:        req.Name,
		Description: &req.Description,
		CreatedBy:   req.CreatorID,
	}

	if err := database.CreateClassRoom(config.GetDB(), room); err != nil {
		log.Error().Err(err).Int64("creator_id", req.CreatorID).Msg("Failed to create classroom")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create classroom"})
	}

	return c.Status(201).JSON(room)
}

func AddMemberAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	type AddMemberRequest struct {
		UserID int64       `json:"userId" validate:"required,gt=0"`
		Role   models.Role `json:"role"`
	}

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	// Role is optional; a missing role defaults to NORMAL, a supplied one must
	// be a known value.
	if req.Role == "" {
		req.Role = models.RoleNormal
	} else if !models.ValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fiber.Map{"role": "must be one of [ADMIN MODERATOR NORMAL]"},
		})
	}

	member := &models.ClassMember{
		UserID:  req.UserID,
		ClassID: int64(classID),
		Role:    req.Role,
	}

	if err := database.AddClassMember(config.GetDB(), member); err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to add member")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add member"})
	}

	return c.Status(201).JSON(member)
}

func GetMembersAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	members, err := database.GetMembersByClass(config.GetDB(), int64(classID))
	if err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to fetch members")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch members"})
	}
	if members == nil {
		members = []*models.ClassMember{}
	}

	return c.JSON(fiber.Map{
		"members": members,
		"count":   len(members),
	})
}

func UpdateMemberRoleAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}

	type UpdateRoleRequest struct {
		UserID int64       `json:"userId" validate:"required,gt=0"`
		Role   models.Role `json:"role" validate:"required,oneof=ADMIN MODERATOR NORMAL"`
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	updated, err := database.UpdateMemberRole(config.GetDB(), int64(classID), req.UserID, req.Role)
	if err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to update member role")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update member role"})
	}
	if updated == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Member not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Member role updated successfully",
		"updated": updated,
	})
}

func GetUserClassesAPI(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	rooms, err := database.GetClassRoomsByMember(config.GetDB(), int64(userID))
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("Failed to fetch classes")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	if rooms == nil {
		rooms = []*models.ClassRoom{}
	}

	// ?include=members nests membership and user data per classroom
	if c.Query("include") == "members" {
		for _, room := range rooms {
			members, err := database.GetMembersByClass(config.GetDB(), room.ID)
			if err != nil {
				log.Error().Err(err).Int64("class_id", room.ID).Msg("Failed to fetch members")
				return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
			}
			room.Members = members
		}
	}

	return c.JSON(fiber.Map{
		"classes": rooms,
		"count":   len(rooms),
	})
}

func GetAvailableMembersAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil || classID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class ID"})
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	db := config.GetDB()

	if _, err := database.GetClassRoomByID(db, int64(classID)); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Classroom not found"})
		}
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to fetch classroom")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch available members"})
	}

	users, err := database.GetAllUsers(db)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch available members"})
	}

	memberIDs, err := database.GetMemberUserIDs(db, int64(classID))
	if err != nil {
		log.Error().Err(err).Int("class_id", classID).Msg("Failed to fetch member ids")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch available members"})
	}

	available := availableUsers(users, memberIDs, int64(userID))

	return c.JSON(fiber.Map{
		"users": available,
		"count": len(available),
	})
}
