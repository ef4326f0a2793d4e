package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Campos livres: o serviço é texto, data e hora chegam como o cliente
	// enviou, sem normalização.
	ServiceName string `gorm:"size:100;not null" json:"service_name"`
	Date        string `gorm:"size:20" json:"date"`
	Time        string `gorm:"size:20" json:"time"`
	Location    string `gorm:"size:255" json:"location"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
