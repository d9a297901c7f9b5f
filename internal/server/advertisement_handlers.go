package server

import (
	"fmt"

	"adboard/internal/models"
	"adboard/internal/observability"
	"adboard/internal/repository"
	"adboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const advertisementResource = "advertisement"

// CreateAdvertisement handles POST /advertisements/
func (s *Server) CreateAdvertisement(c *fiber.Ctx) error {
	var req validation.CreateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if appErr := req.Validate(); appErr != nil {
		return models.RespondWithError(c, appErr)
	}

	uow := s.uow(c)

	// Resolve the owner so a dangling owner_id surfaces as 404, not a raw
	// foreign key fault at commit.
	if _, err := repository.GetByID[models.User](c.Context(), uow, userResource, *req.OwnerID); err != nil {
		return models.RespondWithError(c, err)
	}

	adv := &models.Advertisement{
		Header:  *req.Header,
		Desc:    req.Desc,
		OwnerID: *req.OwnerID,
	}

	if err := repository.Create(c.Context(), uow, advertisementResource, adv); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, advertisementResource); err != nil {
		return models.RespondWithError(c, err)
	}

	observability.EntitiesCreated.WithLabelValues(advertisementResource).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"advertisement_header": adv.Header})
}

// GetAdvertisement handles GET /advertisements/:id
func (s *Server) GetAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	adv, err := repository.GetByID[models.Advertisement](c.Context(), s.uow(c), advertisementResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"advertisement_id": adv.ID,
		"header":           adv.Header,
		"owner_id":         adv.OwnerID,
	})
}

// UpdateAdvertisement handles PATCH /advertisements/:id. The header is
// required even on partial update; desc changes only when present.
func (s *Server) UpdateAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req validation.UpdateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if appErr := req.Validate(); appErr != nil {
		return models.RespondWithError(c, appErr)
	}

	uow := s.uow(c)
	adv, err := repository.GetByID[models.Advertisement](c.Context(), uow, advertisementResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	adv.Header = *req.Header
	if req.Desc != nil {
		adv.Desc = req.Desc
	}

	if err := repository.Save(c.Context(), uow, advertisementResource, adv); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, advertisementResource); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"adv_id": adv.ID})
}

// DeleteAdvertisement handles DELETE /advertisements/:id
func (s *Server) DeleteAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	uow := s.uow(c)
	adv, err := repository.GetByID[models.Advertisement](c.Context(), uow, advertisementResource, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := repository.Delete(c.Context(), uow, advertisementResource, adv); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := repository.Commit(uow, advertisementResource); err != nil {
		return models.RespondWithError(c, err)
	}

	observability.EntitiesDeleted.WithLabelValues(advertisementResource).Inc()
	return c.JSON(fiber.Map{"status": fmt.Sprintf("advertisement %d is deleted", id)})
}
