package payment

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
)

// StripeGateway adapts Stripe Checkout Sessions to the CheckoutGateway port.
// Every provider call runs under the configured timeout so a slow provider
// cannot hold a request open indefinitely.
type StripeGateway struct {
	client *stripe.Client
	cfg    config.StripeConfig
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		client: stripe.NewClient(cfg.SecretKey),
		cfg:    cfg,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in commands.CreateSessionInput) (*commands.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	params := &stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		UIMode:            stripe.String("hosted"),
		SuccessURL:        stripe.String(g.cfg.SuccessURL),
		CancelURL:         stripe.String(g.cfg.CancelURL),
		ClientReferenceID: stripe.String(in.BookingID.String()),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.TotalCents),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s (%d nights)", in.LandmarkName, in.Nights)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"booking_id": in.BookingID.String(),
		},
	}

	// Stripe only accepts expires_at between 30 minutes and 24 hours out, so
	// a shorter hold still produces the provider's minimum session lifetime.
	if exp := in.ExpiresAt; !exp.IsZero() {
		if min := time.Now().Add(30 * time.Minute); exp.Before(min) {
			exp = min
		}
		params.ExpiresAt = stripe.Int64(exp.Unix())
	}

	sess, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session create failed")
	}

	return toCheckoutSession(sess), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	sess, err := g.client.V1CheckoutSessions.Retrieve(ctx, sessionID, &stripe.CheckoutSessionRetrieveParams{})
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session retrieve failed")
	}

	return toCheckoutSession(sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *commands.CheckoutSession {
	var status booking.SessionStatus
	switch sess.Status {
	case stripe.CheckoutSessionStatusComplete:
		status = booking.SessionComplete
	case stripe.CheckoutSessionStatusExpired:
		status = booking.SessionExpired
	default:
		status = booking.SessionOpen
	}
	return &commands.CheckoutSession{
		ID:     sess.ID,
		URL:    sess.URL,
		Status: status,
	}
}
