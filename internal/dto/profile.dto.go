package dto

type ProfileBookingDTO struct {
	BookingID       uint   `json:"bookingId"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	AdditionalNotes string `json:"additionalNotes"`
}

type ProfileDTO struct {
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	PhoneNumber string              `json:"phoneNumber"`
	Bookings    []ProfileBookingDTO `json:"bookings"`
}
