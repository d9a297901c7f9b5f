package server

import (
	"errors"

	"adboard/internal/database"
	"adboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// unitOfWorkKey is the Locals key under which the request's unit of work is stored.
const unitOfWorkKey = "uow"

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// uow returns the unit of work opened by RequestUnitOfWork for this request.
func (s *Server) uow(c *fiber.Ctx) *database.UnitOfWork {
	return c.Locals(unitOfWorkKey).(*database.UnitOfWork)
}

// parseID extracts the :id route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}
