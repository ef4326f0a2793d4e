package booking

import (
	"context"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID    uint
	ClientEmail string

	ServiceName string
	Date        string
	Time        string
	Location    string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
	cache cache.Cache
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Recorder,
	cache cache.Cache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute insere a reserva como chegou: serviço, data e hora são texto
// livre e não há checagem de conflito de horário.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b := &models.Booking{
		ClientID:    in.ClientID,
		ServiceName: in.ServiceName,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	invalidateProfile(ctx, uc.cache, in.ClientEmail)

	return b, nil
}
