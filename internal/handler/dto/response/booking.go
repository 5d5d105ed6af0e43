package response

import (
	"time"

	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              string    `json:"id"`
	LandmarkID      string    `json:"landmark_id"`
	LandmarkName    string    `json:"landmark_name"`
	GuestID         string    `json:"guest_id"`
	HostID          string    `json:"host_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int32     `json:"nights"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	SessionID       *string   `json:"session_id,omitempty"`
	SessionStatus   *string   `json:"session_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		LandmarkID:      v.LandmarkID.String(),
		LandmarkName:    v.LandmarkName,
		GuestID:         v.GuestID.String(),
		HostID:          v.HostID.String(),
		CheckIn:         v.CheckIn.Format(dateLayout),
		CheckOut:        v.CheckOut.Format(dateLayout),
		Nights:          v.Nights,
		TotalCents:      v.TotalCents,
		Status:          v.Status,
		SessionID:       v.SessionID,
		SessionStatus:   v.SessionStatus,
		CreatedAt:       v.CreatedAt,
		StatusChangedAt: v.StatusChangedAt,
	}
}

type BookingListResponse struct {
	ID           string    `json:"id"`
	LandmarkID   string    `json:"landmark_id"`
	LandmarkName string    `json:"landmark_name"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Nights       int32     `json:"nights"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           item.ID.String(),
		LandmarkID:   item.LandmarkID.String(),
		LandmarkName: item.LandmarkName,
		CheckIn:      item.CheckIn.Format(dateLayout),
		CheckOut:     item.CheckOut.Format(dateLayout),
		Nights:       item.Nights,
		TotalCents:   item.TotalCents,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt,
	}
}

type CheckoutSessionResponse struct {
	SessionID     string `json:"session_id"`
	URL           string `json:"url,omitempty"`
	BookingID     string `json:"booking_id,omitempty"`
	BookingStatus string `json:"booking_status"`
}

func FromCheckoutResult(r *commands.CheckoutSessionResult) *CheckoutSessionResponse {
	resp := &CheckoutSessionResponse{
		SessionID:     r.SessionID,
		URL:           r.URL,
		BookingStatus: r.BookingStatus,
	}
	if r.BookingID != uuid.Nil {
		resp.BookingID = r.BookingID.String()
	}
	return resp
}
