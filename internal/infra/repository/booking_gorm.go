package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {

	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		// Índice único de email: o INSERT é a verificação, sem
		// check-then-insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) UpdateClientInfo(
	ctx context.Context,
	clientID uint,
	name string,
	phoneNumber string,
) error {

	// Sobrescrita incondicional: id inexistente afeta zero linhas e não
	// é erro.
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"name":         name,
			"phone_number": phoneNumber,
		}).Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBookingForClient(
	ctx context.Context,
	bookingID uint,
	clientID uint,
	fields domain.BookingFields,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND client_id = ?", bookingID, clientID).
		Updates(map[string]any{
			"service_name": fields.ServiceName,
			"date":         fields.Date,
			"time":         fields.Time,
			"location":     fields.Location,
			"notes":        fields.Notes,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingGormRepository) DeleteBookingForClient(
	ctx context.Context,
	bookingID uint,
	clientID uint,
) error {

	// Idempotente: id inexistente ou de outro cliente apaga zero linhas.
	return r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", bookingID, clientID).
		Delete(&models.Booking{}).Error
}

func (r *BookingGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
