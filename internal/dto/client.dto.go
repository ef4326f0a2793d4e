package dto

// ClientPublicDTO é a visão pública de um cliente: o hash de senha nunca
// sai daqui.
type ClientPublicDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
