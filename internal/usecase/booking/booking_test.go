package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/models"
)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakeRepo struct {
	clients  map[uint]*models.Client
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:  map[uint]*models.Client{},
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

func (f *fakeRepo) CreateClient(_ context.Context, c *models.Client) error {
	for _, existing := range f.clients {
		if existing.Email == c.Email {
			return domain.ErrDuplicateEmail
		}
	}
	c.ID = f.nextID
	f.nextID++
	f.clients[c.ID] = c
	return nil
}

func (f *fakeRepo) GetClientByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (f *fakeRepo) UpdateClientInfo(_ context.Context, clientID uint, name, phone string) error {
	if c, ok := f.clients[clientID]; ok {
		c.Name = name
		c.PhoneNumber = phone
	}
	return nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeRepo) UpdateBookingForClient(_ context.Context, bookingID, clientID uint, fields domain.BookingFields) error {
	b, ok := f.bookings[bookingID]
	if !ok || b.ClientID != clientID {
		return domain.ErrBookingNotFound
	}
	b.ServiceName = fields.ServiceName
	b.Date = fields.Date
	b.Time = fields.Time
	b.Location = fields.Location
	b.Notes = fields.Notes
	return nil
}

func (f *fakeRepo) DeleteBookingForClient(_ context.Context, bookingID, clientID uint) error {
	if b, ok := f.bookings[bookingID]; ok && b.ClientID == clientID {
		delete(f.bookings, bookingID)
	}
	return nil
}

func (f *fakeRepo) ListBookingsByClient(_ context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAllBookings(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeCache struct {
	entries map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.entries[key]; ok {
		return v, nil
	}
	return "", cache.ErrMiss
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }

// ------------------------------------------------------
// tests
// ------------------------------------------------------

func TestCreateBookingPersistsAndAudits(t *testing.T) {
	repo := newFakeRepo()
	rec := &fakeRecorder{}
	fc := newFakeCache()
	fc.entries[cache.ProfileKey("a@b.com")] = "stale"

	uc := NewCreateBooking(repo, rec, fc)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:    1,
		ClientEmail: "a@b.com",
		ServiceName: "Deep Clean",
		Date:        "2026-09-15",
		Time:        "14:00",
		Location:    "12 Main St",
		Notes:       "ring the bell",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	stored, ok := repo.bookings[created.ID]
	if !ok {
		t.Fatal("booking not persisted")
	}
	if stored.ClientID != 1 || stored.ServiceName != "Deep Clean" || stored.Notes != "ring the bell" {
		t.Errorf("stored booking mismatch: %+v", stored)
	}

	if len(rec.events) != 1 || rec.events[0].Action != "booking_created" {
		t.Errorf("audit events = %+v, want one booking_created", rec.events)
	}

	if _, ok := fc.entries[cache.ProfileKey("a@b.com")]; ok {
		t.Error("profile cache entry should have been invalidated")
	}
}

func TestUpdateBookingScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[10] = &models.Booking{ID: 10, ClientID: 1, ServiceName: "Trim"}

	uc := NewUpdateBooking(repo, &fakeRecorder{}, nil)

	err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID:   10,
		ClientID:    2,
		ServiceName: "Hijacked",
		Date:        "2026-01-01",
		Time:        "09:00",
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("update by non-owner: err = %v, want ErrBookingNotFound", err)
	}
	if repo.bookings[10].ServiceName != "Trim" {
		t.Error("booking was mutated by a non-owner")
	}

	err = uc.Execute(context.Background(), UpdateBookingInput{
		BookingID:   10,
		ClientID:    1,
		ClientEmail: "owner@b.com",
		ServiceName: "Full Service",
		Date:        "2026-01-02",
		Time:        "10:30",
		Location:    "Shop 2",
		Notes:       "updated",
	})
	if err != nil {
		t.Fatalf("update by owner failed: %v", err)
	}

	b := repo.bookings[10]
	if b.ServiceName != "Full Service" || b.Date != "2026-01-02" || b.Time != "10:30" || b.Location != "Shop 2" || b.Notes != "updated" {
		t.Errorf("full-field overwrite incomplete: %+v", b)
	}
}

func TestUpdateMissingBookingNotFound(t *testing.T) {
	uc := NewUpdateBooking(newFakeRepo(), &fakeRecorder{}, nil)

	err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID: 999,
		ClientID:  1,
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestDeleteBookingIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[5] = &models.Booking{ID: 5, ClientID: 1}

	uc := NewDeleteBooking(repo, &fakeRecorder{}, nil)

	if err := uc.Execute(context.Background(), 999, 1, "a@b.com"); err != nil {
		t.Errorf("delete of missing booking returned %v, want nil", err)
	}

	if err := uc.Execute(context.Background(), 5, 1, "a@b.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.bookings[5]; ok {
		t.Error("booking still present after delete")
	}

	if err := uc.Execute(context.Background(), 5, 1, "a@b.com"); err != nil {
		t.Errorf("repeated delete returned %v, want nil", err)
	}
}

func TestDeleteBookingScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[5] = &models.Booking{ID: 5, ClientID: 1}

	uc := NewDeleteBooking(repo, &fakeRecorder{}, nil)

	if err := uc.Execute(context.Background(), 5, 2, "other@b.com"); err != nil {
		t.Fatalf("delete by non-owner returned %v, want nil", err)
	}
	if _, ok := repo.bookings[5]; !ok {
		t.Error("booking of another client was deleted")
	}
}

func TestListBookingsReturnsEverything(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{ID: 1, ClientID: 1}
	repo.bookings[2] = &models.Booking{ID: 2, ClientID: 2}

	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("len = %d, want 2", len(out))
	}
}
