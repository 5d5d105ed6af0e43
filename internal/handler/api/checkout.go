package api

import (
	"context"
	"net/http"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Open checkout
// @Description Create a hosted checkout session for a pending booking
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/checkout [post]
func (h *CheckoutHandler) OpenCheckout(c *gin.Context) {
	h.open(c, h.checkoutCommands.Open)
}

// @Summary Retry checkout
// @Description Replace an expired or abandoned session with a fresh one
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/checkout/retry [post]
func (h *CheckoutHandler) RetryCheckout(c *gin.Context) {
	h.open(c, h.checkoutCommands.Retry)
}

func (h *CheckoutHandler) open(c *gin.Context, call func(ctx context.Context, actorID, bookingID uuid.UUID) (*commands.CheckoutSessionResult, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := call(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Reconcile checkout session
// @Description Pull the provider's view of a session and advance the booking
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param sessionRef path string true "Checkout session reference"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/{sessionRef} [get]
func (h *CheckoutHandler) GetCheckoutSession(c *gin.Context) {
	sessionRef := c.Param("sessionRef")
	if sessionRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Session reference required",
		})
		return
	}

	result, err := h.checkoutCommands.Reconcile(c.Request.Context(), sessionRef)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
