package models

import "time"

// Device представляет устройство, привязанное к серверу при pairing.
type Device struct {
	PairedAt   time.Time `json:"paired_at"`    // PairedAt время привязки устройства
	LastSeenAt time.Time `json:"last_seen_at"` // LastSeenAt время последнего запроса устройства
	ID         string    `json:"id"`           // ID уникальный идентификатор устройства (UUID)
	Name       string    `json:"name"`         // Name человекочитаемое имя устройства
}
