package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a landmark for a date range; the dates are held as pending until paid
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	landmarkID, err := uuid.Parse(req.LandmarkID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid landmark ID format",
		})
		return
	}

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be formatted as YYYY-MM-DD",
		})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), userID, commands.CreateBookingInput{
		LandmarkID: landmarkID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings made by the current guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param from query string false "Stays ending after this date (YYYY-MM-DD)"
// @Param to query string false "Stays starting before this date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListByGuest)
}

// @Summary List host bookings
// @Description List bookings against the current host's landmarks
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param from query string false "Stays ending after this date (YYYY-MM-DD)"
// @Param to query string false "Stays starting before this date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/host [get]
func (h *BookingHandler) GetHostBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListByHost)
}

func (h *BookingHandler) listBookings(c *gin.Context, list func(ctx context.Context, actorID uuid.UUID, filter queries.ListFilter) ([]*queries.BookingListItem, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var query reqdto.ListBookingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be formatted as YYYY-MM-DD",
		})
		return
	}

	items, err := list(c.Request.Context(), userID, filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get a booking by ID; visible to its guest and the landmark owner only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, bookingID, ok := h.actorAndBookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Description Host acknowledges a paid booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [patch]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.Confirm)
}

// @Summary Check in booking
// @Description Host records guest arrival on or after the check-in date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/checkin [patch]
func (h *BookingHandler) CheckInBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.CheckIn)
}

// @Summary Cancel booking
// @Description Guest or host cancels; not possible once checked in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.Cancel)
}

// @Summary Delete booking
// @Description Guest removes a pending booking that never had a successful payment
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	userID, bookingID, ok := h.actorAndBookingID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), userID, bookingID); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error)) {
	userID, bookingID, ok := h.actorAndBookingID(c)
	if !ok {
		return
	}

	view, err := apply(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) actorAndBookingID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, bookingID, true
}

// respondBookingError maps the usecase error taxonomy onto response codes.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay range",
		})
	case errors.Is(err, errs.ErrLandmarkNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Landmark not found",
		})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Checkout session not found",
		})
	case errors.Is(err, errs.ErrUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Dates are not available",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not permitted for this booking",
		})
	case errors.Is(err, errs.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking has already been paid",
		})
	case errors.Is(err, errs.ErrPaymentRecorded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A successful payment is recorded for this booking",
		})
	case errors.Is(err, errs.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking state does not allow this operation",
		})
	case errors.Is(err, errs.ErrPaymentProvider):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment provider unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
