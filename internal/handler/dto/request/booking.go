package request

import (
	"time"

	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	LandmarkID string `json:"landmark_id" binding:"required,uuid"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

// StayDates parses the calendar-date fields. Times of day are not accepted;
// stays are whole nights.
func (r *CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid check_in date")
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid check_out date")
	}
	return checkIn, checkOut, nil
}

type ListBookingsQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (q *ListBookingsQuery) ToFilter() (queries.ListFilter, error) {
	var filter queries.ListFilter
	if q.Status != "" {
		s := q.Status
		filter.Status = &s
	}
	if q.From != "" {
		from, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return queries.ListFilter{}, errs.Wrap(err, "invalid from date")
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return queries.ListFilter{}, errs.Wrap(err, "invalid to date")
		}
		filter.To = &to
	}
	return filter, nil
}
