package models

import "time"

// Client é o usuário final que possui reservas. Email e senha nunca mudam
// pelas operações expostas.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber  string `gorm:"size:20" json:"phoneNumber"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
