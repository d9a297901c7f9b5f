package server

import (
	"adboard/internal/models"
	"adboard/internal/observability"
	"adboard/internal/password"
	"adboard/internal/repository"
	"adboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const userResource = "user"

// CreateUser handles POST /users/
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req validation.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if appErr := req.Validate(); appErr != nil {
		return models.RespondWithError(c, appErr)
	}

	hashed, err := password.Hash(*req.Password)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	uow := s.uow(c)
	user := &models.User{
		Name:     *req.Name,
		Password: hashed,
	}

	if err := repository.Create(c.Context(), uow, userResource, user); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, userResource); err != nil {
		return models.RespondWithError(c, err)
	}

	observability.EntitiesCreated.WithLabelValues(userResource).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user_id": user.ID})
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := repository.GetByID[models.User](c.Context(), s.uow(c), userResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	// Never expose the password hash
	return c.JSON(fiber.Map{
		"user_id":   user.ID,
		"user_name": user.Name,
	})
}

// UpdateUser handles PATCH /users/:id. Only fields present in the payload
// change; a password is re-hashed before storage.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req validation.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if appErr := req.Validate(); appErr != nil {
		return models.RespondWithError(c, appErr)
	}

	uow := s.uow(c)
	user, err := repository.GetByID[models.User](c.Context(), uow, userResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		user.Password = hashed
	}

	if err := repository.Save(c.Context(), uow, userResource, user); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, userResource); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"user_id": user.ID})
}

// DeleteUser handles DELETE /users/:id. The user's advertisements are
// removed by the database's cascading constraint.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	uow := s.uow(c)
	user, err := repository.GetByID[models.User](c.Context(), uow, userResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := repository.Delete(c.Context(), uow, userResource, user); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, userResource); err != nil {
		return models.RespondWithError(c, err)
	}

	observability.EntitiesDeleted.WithLabelValues(userResource).Inc()
	return c.JSON(fiber.Map{"status": "user is deleted"})
}
