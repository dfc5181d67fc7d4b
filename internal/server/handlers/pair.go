package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/internal/server/storage"
	"github.com/iudanet/scopekeeper/internal/validation"
	"github.com/iudanet/scopekeeper/pkg/api"
)

// PairHandler обрабатывает привязку устройств к хабу
type PairHandler struct {
	logger          *slog.Logger
	devices         storage.DeviceStorage
	jwtConfig       JWTConfig
	pairingCodeHash []byte // bcrypt хеш pairing code хаба
	serverDeviceID  string
}

// NewPairHandler создает новый handler для pairing
func NewPairHandler(logger *slog.Logger, devices storage.DeviceStorage, jwtConfig JWTConfig, pairingCodeHash []byte, serverDeviceID string) *PairHandler {
	return &PairHandler{
		logger:          logger,
		devices:         devices,
		jwtConfig:       jwtConfig,
		pairingCodeHash: pairingCodeHash,
		serverDeviceID:  serverDeviceID,
	}
}

// Pair обрабатывает POST /api/v1/pair
// Привязка нового устройства по pairing code
func (h *PairHandler) Pair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.PairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode pair request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация имени устройства
	if err := validation.ValidateDeviceName(req.DeviceName); err != nil {
		h.logger.WarnContext(ctx, "invalid device name", slog.String("device_name", req.DeviceName), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверка pairing code. Сравнение через bcrypt, код в БД не хранится
	if err := bcrypt.CompareHashAndPassword(h.pairingCodeHash, []byte(req.PairingCode)); err != nil {
		h.logger.WarnContext(ctx, "pairing failed: invalid code", slog.String("device_name", req.DeviceName))
		h.sendError(w, "invalid pairing code", http.StatusUnauthorized)
		return
	}

	// Регистрируем устройство
	now := time.Now()
	device := &models.Device{
		ID:         uuid.New().String(),
		Name:       req.DeviceName,
		PairedAt:   now,
		LastSeenAt: now,
	}

	if err := h.devices.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, storage.ErrDeviceAlreadyExists) {
			h.logger.WarnContext(ctx, "device already exists", slog.String("device_id", device.ID))
			h.sendError(w, "device already paired", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create device", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Выпускаем access token устройства
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, device.ID, device.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "device paired successfully",
		slog.String("device_name", device.Name),
		slog.String("device_id", device.ID))

	resp := api.PairResponse{
		DeviceID:       device.ID,
		ServerDeviceID: h.serverDeviceID,
		AccessToken:    accessToken,
		ExpiresIn:      expiresIn,
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// sendJSON отправляет JSON ответ
func (h *PairHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *PairHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
