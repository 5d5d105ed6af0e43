//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleGuest)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetGuestBookings)
	s.router.GET("/bookings/host", authMiddleware, s.handler.GetHostBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.PATCH("/bookings/:id/checkin", authMiddleware, s.handler.CheckInBooking)
	s.router.PATCH("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateBody() map[string]any {
	return map[string]any{
		"landmark_id": uuid.New().String(),
		"check_in":    "2024-06-01",
		"check_out":   "2024-06-04",
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	returnView := builder.NewBookingBuilder().WithGuestID(s.userID).BuildViewQuery()

	s.Run("success: returns 201 Created with the pending booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal(int32(3), body.Nights)
		s.Equal(int64(3000), body.TotalCents)
	})

	s.Run("error: 400 on missing landmark_id", func() {
		body := validCreateBody()
		delete(body, "landmark_id")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed landmark_id", func() {
		body := validCreateBody()
		body["landmark_id"] = "not-a-uuid"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on dates with time of day", func() {
		body := validCreateBody()
		body["check_in"] = "2024-06-01T15:00:00Z"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	// Transition errors come back the way the commands produce them: the
	// domain cause carrying a taxonomy mark, not the bare reference error.
	s.Run("error: 400 on reversed stay range", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(booking.ErrInvalidStayRange, errs.ErrInvalidStayRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid stay range")
	})

	s.Run("error: 404 on unknown landmark", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.ErrLandmarkNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Landmark not found")
	})

	s.Run("error: 409 when the dates are taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.ErrUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().WithGuestID(s.userID).BuildViewQuery()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.Equal("2024-06-01", body.CheckIn)
		s.Equal("2024-06-04", body.CheckOut)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when invisible to the actor", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItemQuery(),
		builder.NewBookingBuilder().BuildListItemQuery(),
	}

	s.Run("success: guest listing", func() {
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.userID, gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: host listing with status filter", func() {
		s.mockQueries.EXPECT().ListByHost(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, filter queries.ListFilter) ([]*queries.BookingListItem, error) {
				s.Require().NotNil(filter.Status)
				s.Equal("paid", *filter.Status)
				return items[:1], nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/host?status=paid", nil, "bearer-token")

		var body []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on malformed date window", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=June-1st", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	view := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: returns the confirmed booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/confirm", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: 403 when the actor is not the host", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, view.ID).
			Return(nil, errs.Mark(booking.ErrForbiddenTransition, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/confirm", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not permitted")
	})

	s.Run("error: 409 when the booking is not paid", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, view.ID).
			Return(nil, errs.Mark(booking.ErrNotPaid, errs.ErrIllegalTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/confirm", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "state does not allow")
	})
}

func (s *BookingHandlerTestSuite) TestCheckInBooking() {
	view := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/checkin", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	})

	s.Run("error: 409 before the check-in date", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.userID, view.ID).
			Return(nil, errs.Mark(booking.ErrBeforeCheckInDate, errs.ErrIllegalTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/checkin", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	view := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/cancel", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	})

	s.Run("error: 409 after check-in", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, view.ID).
			Return(nil, errs.Mark(booking.ErrAlreadyCheckedIn, errs.ErrIllegalTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"/cancel", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when a payment is recorded", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, id).
			Return(errs.Mark(booking.ErrPaymentAlreadyTaken, errs.ErrPaymentRecorded)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "payment is recorded")
	})

	s.Run("error: 403 for the host", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, id).
			Return(errs.Mark(booking.ErrForbiddenTransition, errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
