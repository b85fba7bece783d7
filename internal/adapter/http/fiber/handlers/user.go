package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/service/registry"

	"github.com/seu-repo/bss-ve/internal/ports"
)

type UserHandler struct {
	service ports.RegistryService
	log     *zap.Logger
}

func NewUserHandler(service ports.RegistryService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// createUserRequest shadows fields the entity hides from JSON. A plaintext
// password is hashed here; a pre-hashed value is stored as-is. is_active
// defaults to true when the key is absent.
type createUserRequest struct {
	domain.User
	Password     string `json:"password"`
	PasswordHash string `json:"password_hash"`
	IsActive     *bool  `json:"is_active"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	user := req.User
	user.PasswordHash = req.PasswordHash
	if req.Password != "" {
		hash, err := registry.HashPassword(req.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	user.IsActive = req.IsActive == nil || *req.IsActive

	created, err := h.service.CreateUser(c.Context(), &user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user_id": created.ID,
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateUser(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
