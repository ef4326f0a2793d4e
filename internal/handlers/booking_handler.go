package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/httperr"
	"github.com/bookline/booking-api/internal/httpresp"
	"github.com/bookline/booking-api/internal/middleware"
	ucBooking "github.com/bookline/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	deleteUC *ucBooking.DeleteBooking
	listUC   *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	clientEmail := c.MustGet(middleware.ContextClientEmail).(string)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:    clientID,
		ClientEmail: clientEmail,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		log.Println("booking create error:", err)
		httperr.Internal(c, "failed_to_create_booking", "Internal Server Error")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Booking successfully created.")
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	clientEmail := c.MustGet(middleware.ContextClientEmail).(string)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	err = h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		BookingID:   uint(bookingID),
		ClientID:    clientID,
		ClientEmail: clientEmail,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		log.Println("booking update error:", err)
		httperr.Internal(c, "failed_to_update_booking", "Internal Server Error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Booking updated successfully.")
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	clientEmail := c.MustGet(middleware.ContextClientEmail).(string)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(bookingID), clientID, clientEmail); err != nil {
		log.Println("booking delete error:", err)
		httperr.Internal(c, "failed_to_delete_booking", "Internal Server Error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Booking deleted successfully.")
}

// ======================================================
// LIST (ADMIN-STYLE)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		log.Println("booking list error:", err)
		httperr.Internal(c, "failed_to_list_bookings", "Internal Server Error")
		return
	}

	httpresp.List(c, bookings)
}
