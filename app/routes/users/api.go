package users

import (
	"database/sql"

	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/routes/auth"
	"classhub/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return c.Status(400).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": fiber.Map{"email": "is already registered"},
			})
		}
		log.Error().Err(err).Msg("Failed to create user")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"user": user})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fields := validation.Check(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		log.Error().Err(err).Msg("Failed to fetch user")
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	if users == nil {
		users = []*models.User{}
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}
