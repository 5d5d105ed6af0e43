//go:build unit

package commands_test

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		Currency:      "usd",
		HoldTTL:       30 * time.Minute,
		SweepInterval: time.Minute,
	}
}

// In-memory unit of work: transactions run the callback directly against
// map-backed stores, which is enough to exercise command logic and error
// mapping. Isolation behavior itself is the database's job.
type stubUoW struct {
	repo  *stubBookingRepo
	reads *stubReads
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		repo: &stubBookingRepo{
			byID: make(map[uuid.UUID]*booking.Booking),
		},
		reads: &stubReads{
			landmarks: make(map[uuid.UUID]*shared.LandmarkSnapshot),
			bookings:  make(map[uuid.UUID]*shared.BookingSnapshot),
		},
	}
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &stubTx{uow: u})
}

func (u *stubUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &stubTx{uow: u})
}

func (u *stubUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type stubTx struct {
	uow *stubUoW
}

func (t *stubTx) Bookings() shared.BookingRepository { return t.uow.repo }
func (t *stubTx) Reads() shared.CommandReads         { return t.uow.reads }
func (t *stubTx) DB() db.DBTX                        { return nil }

type stubBookingRepo struct {
	byID      map[uuid.UUID]*booking.Booking
	overlaps  int32
	createErr error
}

func (r *stubBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[b.ID()] = b
	return nil
}

func (r *stubBookingRepo) Update(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	if _, ok := r.byID[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.byID[b.ID()] = b
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *stubBookingRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *stubBookingRepo) FindBySessionForUpdate(_ context.Context, _ db.DBTX, sessionID string) (*booking.Booking, error) {
	for _, b := range r.byID {
		if b.SessionID() != nil && *b.SessionID() == sessionID {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *stubBookingRepo) CountActiveOverlaps(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.StayRange) (int32, error) {
	return r.overlaps, nil
}

func (r *stubBookingRepo) ExpireStaleHolds(_ context.Context, _ db.DBTX, cutoff time.Time) (int64, error) {
	var n int64
	for _, b := range r.byID {
		if b.Status() == booking.StatusPending && b.CreatedAt().Before(cutoff) {
			_ = b.Cancel(b.GuestID(), cutoff)
			n++
		}
	}
	return n, nil
}

type stubReads struct {
	landmarks map[uuid.UUID]*shared.LandmarkSnapshot
	bookings  map[uuid.UUID]*shared.BookingSnapshot
}

func (r *stubReads) LandmarkByID(_ context.Context, id uuid.UUID) (*shared.LandmarkSnapshot, error) {
	lm, ok := r.landmarks[id]
	if !ok {
		return nil, infra.WrapRepoErr("landmark not found", nil, infra.KindNotFound)
	}
	return lm, nil
}

func (r *stubReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

// snapshotBooking mirrors a stored booking into the command-read store the way
// the real read store would observe it after commit.
func (u *stubUoW) snapshotBooking(b *booking.Booking) {
	u.reads.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:         b.ID(),
		LandmarkID: b.LandmarkID(),
		GuestID:    b.GuestID(),
		HostID:     b.HostID(),
		Status:     b.Status().String(),
		SessionID:  b.SessionID(),
		TotalCents: b.Total().Cents(),
		Nights:     b.Nights(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		CreatedAt:  b.CreatedAt(),
	}
}

// stubQueries serves read-after-write lookups straight from the write store.
type stubQueries struct {
	repo *stubBookingRepo
}

func (q *stubQueries) view(b *booking.Booking) *queries.BookingView {
	var sessStatus *string
	if s := b.SessionStatus(); s != nil {
		v := s.String()
		sessStatus = &v
	}
	return &queries.BookingView{
		ID:              b.ID(),
		LandmarkID:      b.LandmarkID(),
		LandmarkName:    "Seaside Cabin",
		GuestID:         b.GuestID(),
		HostID:          b.HostID(),
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		Nights:          b.Nights(),
		TotalCents:      b.Total().Cents(),
		Status:          b.Status().String(),
		SessionID:       b.SessionID(),
		SessionStatus:   sessStatus,
		CreatedAt:       b.CreatedAt(),
		StatusChangedAt: b.StatusChangedAt(),
	}
}

func (q *stubQueries) GetByID(_ context.Context, actor uuid.UUID, id uuid.UUID) (*queries.BookingView, error) {
	return q.GetByIDSystem(context.Background(), id)
}

func (q *stubQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := q.repo.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return q.view(b), nil
}

func (q *stubQueries) ListByGuest(_ context.Context, _ uuid.UUID, _ queries.ListFilter) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (q *stubQueries) ListByHost(_ context.Context, _ uuid.UUID, _ queries.ListFilter) ([]*queries.BookingListItem, error) {
	return nil, nil
}

// stubGateway scripts provider responses and records what it was asked for.
type stubGateway struct {
	createResult *commands.CheckoutSession
	createErr    error
	createCalls  int
	lastCreate   commands.CreateSessionInput
	retrieved    map[string]*commands.CheckoutSession
	retrieveErr  error
}

func (g *stubGateway) CreateSession(_ context.Context, in commands.CreateSessionInput) (*commands.CheckoutSession, error) {
	g.createCalls++
	g.lastCreate = in
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResult, nil
}

func (g *stubGateway) RetrieveSession(_ context.Context, sessionID string) (*commands.CheckoutSession, error) {
	if g.retrieveErr != nil {
		return nil, g.retrieveErr
	}
	sess, ok := g.retrieved[sessionID]
	if !ok {
		return &commands.CheckoutSession{ID: sessionID, Status: booking.SessionOpen}, nil
	}
	return sess, nil
}
