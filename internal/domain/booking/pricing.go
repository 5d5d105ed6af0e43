package booking

// Quote is the price captured at booking time. It is never recomputed:
// later rate changes on the landmark do not touch existing bookings.
type Quote struct {
	Nights     int32
	TotalCents int64
}

func QuoteStay(stay StayRange, nightlyRateCents int64) (Quote, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return Quote{}, ErrInvalidStayRange
	}
	if nightlyRateCents < 0 {
		return Quote{}, ErrNegativeRate
	}
	return Quote{
		Nights:     nights,
		TotalCents: int64(nights) * nightlyRateCents,
	}, nil
}
