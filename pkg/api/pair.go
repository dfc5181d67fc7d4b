package api

// PairRequest представляет запрос на подключение нового устройства.
// PairingCode — одноразовый код, выданный оператором сервера.
type PairRequest struct {
	DeviceName  string `json:"device_name"`  // человекочитаемое имя устройства
	PairingCode string `json:"pairing_code"` // код подключения
}

// PairResponse представляет ответ на успешное подключение устройства
type PairResponse struct {
	DeviceID       string `json:"device_id"`        // UUID, выданный этому устройству
	ServerDeviceID string `json:"server_device_id"` // идентификатор реплики сервера
	AccessToken    string `json:"access_token"`     // JWT access token
	ExpiresIn      int64  `json:"expires_in"`       // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
