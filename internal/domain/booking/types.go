package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked_in"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusConfirmed, StatusCheckedIn, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds its date range.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

// Provider-side checkout session states mirrored onto the booking.
type SessionStatus string

const (
	SessionOpen     SessionStatus = "open"
	SessionComplete SessionStatus = "complete"
	SessionExpired  SessionStatus = "expired"
)

func (s SessionStatus) String() string {
	return string(s)
}
