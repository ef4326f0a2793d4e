package profile

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bookline/booking-api/internal/cache"
	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/dto"
)

// ======================================================
// USE CASE
// ======================================================

// GetProfile junta o cliente com as reservas dele numa única visão de
// leitura, com cache read-through opcional em redis.
type GetProfile struct {
	repo     domain.Repository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewGetProfile(
	repo domain.Repository,
	c cache.Cache,
	cacheTTL time.Duration,
) *GetProfile {
	return &GetProfile{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (uc *GetProfile) Execute(
	ctx context.Context,
	email string,
) (*dto.ProfileDTO, error) {

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cache.ProfileKey(email)); err == nil {
			var cached dto.ProfileDTO
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		} else if err != cache.ErrMiss {
			log.Println("profile cache read failed:", err)
		}
	}

	client, err := uc.repo.GetClientByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	// Cliente sem reserva responde bookings: [], nunca null.
	out := &dto.ProfileDTO{
		Email:       client.Email,
		Name:        client.Name,
		PhoneNumber: client.PhoneNumber,
		Bookings:    make([]dto.ProfileBookingDTO, 0, len(bookings)),
	}

	for _, b := range bookings {
		out.Bookings = append(out.Bookings, dto.ProfileBookingDTO{
			BookingID:       b.ID,
			ServiceName:     b.ServiceName,
			Date:            b.Date,
			Time:            b.Time,
			Location:        b.Location,
			AdditionalNotes: b.Notes,
		})
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := uc.cache.Set(ctx, cache.ProfileKey(email), string(raw), uc.cacheTTL); err != nil {
				log.Println("profile cache write failed:", err)
			}
		}
	}

	return out, nil
}
