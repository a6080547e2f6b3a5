package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/locker-service/internal/api/dto"
	"github.com/spec-kit/locker-service/internal/auth"
	"github.com/spec-kit/locker-service/internal/domain"
	"github.com/spec-kit/locker-service/internal/service"
	apperrors "github.com/spec-kit/locker-service/pkg/util"
)

// LockersHandler manages locker inventory and booking endpoints.
type LockersHandler struct {
	service *service.LockerService
}

// NewLockersHandler constructs handler.
func NewLockersHandler(lockerService *service.LockerService) *LockersHandler {
	return &LockersHandler{service: lockerService}
}

// List GET /lockers. Admin only; returns every locker matching the
// optional name filter regardless of booking state.
func (h *LockersHandler) List(c *fiber.Ctx) error {
	lockers, err := h.service.List(c.Context(), c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(lockerResponses(lockers))
}

// ListAvailable GET /lockers/available.
func (h *LockersHandler) ListAvailable(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("no token provided")
	}
	available, err := h.service.ListAvailable(c.Context(), principal.ID, c.Query("name"))
	if err != nil {
		return err
	}
	items := make([]dto.LockerResponse, 0, len(available))
	for i := range available {
		items = append(items, dto.NewAvailableLockerResponse(&available[i].Locker, available[i].NotAvailable))
	}
	return c.JSON(items)
}

// ListBooked GET /lockers/booked.
func (h *LockersHandler) ListBooked(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("no token provided")
	}
	lockers, err := h.service.ListBookings(c.Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(lockerResponses(lockers))
}

// Get GET /lockers/:id. Responds with a 0-or-1 element array.
func (h *LockersHandler) Get(c *fiber.Ctx) error {
	lockers, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(lockerResponses(lockers))
}

// Create POST /lockers. Admin only.
func (h *LockersHandler) Create(c *fiber.Ctx) error {
	req, err := parseLockerRequest(c)
	if err != nil {
		return err
	}
	locker, err := h.service.Create(c.Context(), lockerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLockerResponse(locker))
}

// Update PUT /lockers/:id. Admin only; replaces name and geometry.
func (h *LockersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewMissingField("id")
	}
	req, err := parseLockerRequest(c)
	if err != nil {
		return err
	}
	locker, err := h.service.Update(c.Context(), id, lockerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLockerResponse(locker))
}

// Delete DELETE /lockers/:id. Admin only.
func (h *LockersHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewMissingField("id")
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// Book PATCH /lockers/book.
func (h *LockersHandler) Book(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("no token provided")
	}
	req, err := parseBookingRequest(c)
	if err != nil {
		return err
	}
	if _, err := h.service.Book(c.Context(), req.ID, principal.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// Cancel PATCH /lockers/cancel.
func (h *LockersHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("no token provided")
	}
	req, err := parseBookingRequest(c)
	if err != nil {
		return err
	}
	if err := h.service.Cancel(c.Context(), req.ID, principal.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func parseLockerRequest(c *fiber.Ctx) (dto.LockerRequest, error) {
	var req dto.LockerRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewMissingField("name")
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func parseBookingRequest(c *fiber.Ctx) (dto.BookingRequest, error) {
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewMissingField("id")
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func lockerInput(req dto.LockerRequest) service.LockerInput {
	return service.LockerInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Width:     req.Width,
		Height:    req.Height,
		Depth:     req.Depth,
	}
}

func lockerResponses(lockers []domain.Locker) []dto.LockerResponse {
	items := make([]dto.LockerResponse, 0, len(lockers))
	for i := range lockers {
		items = append(items, dto.NewLockerResponse(&lockers[i]))
	}
	return items
}
