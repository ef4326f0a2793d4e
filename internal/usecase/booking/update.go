package booking

import (
	"context"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
)

type UpdateBookingInput struct {
	BookingID   uint
	ClientID    uint
	ClientEmail string

	ServiceName string
	Date        string
	Time        string
	Location    string
	Notes       string
}

type UpdateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
	cache cache.Cache
}

func NewUpdateBooking(
	repo domain.Repository,
	audit audit.Recorder,
	cache cache.Cache,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute sobrescreve todos os campos da reserva. O update é limitado ao
// dono: reserva de outro cliente aparece como inexistente.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) error {

	err := uc.repo.UpdateBookingForClient(
		ctx,
		in.BookingID,
		in.ClientID,
		domain.BookingFields{
			ServiceName: in.ServiceName,
			Date:        in.Date,
			Time:        in.Time,
			Location:    in.Location,
			Notes:       in.Notes,
		},
	)
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &in.ClientID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &in.BookingID,
	})

	invalidateProfile(ctx, uc.cache, in.ClientEmail)

	return nil
}
