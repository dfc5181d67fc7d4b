package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/internal/server/storage"
	"github.com/iudanet/scopekeeper/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// DeviceIDKey ключ для хранения device_id в контексте
	DeviceIDKey contextKey = "device_id"
	// DeviceNameKey ключ для хранения device_name в контексте
	DeviceNameKey contextKey = "device_name"
)

// GetDeviceID извлекает device_id из контекста запроса
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}

// GetDeviceName извлекает device_name из контекста запроса
func GetDeviceName(ctx context.Context) (string, bool) {
	deviceName, ok := ctx.Value(DeviceNameKey).(string)
	return deviceName, ok
}

// EventJournal определяет интерфейс журнала событий хаба
type EventJournal interface {
	AppendEvents(ctx context.Context, events []models.Event) (int, error)
	EventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error)
	CurrentClock(ctx context.Context) (crdt.VectorClock, error)
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger         *slog.Logger
	journal        EventJournal
	devices        storage.DeviceStorage
	serverDeviceID string
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, journal EventJournal, devices storage.DeviceStorage, serverDeviceID string) *SyncHandler {
	return &SyncHandler{
		logger:         logger,
		journal:        journal,
		devices:        devices,
		serverDeviceID: serverDeviceID,
	}
}

// Clock обрабатывает GET /api/v1/sync/clock
// Возвращает текущие векторные часы хаба
func (h *SyncHandler) Clock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device id not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.touchDevice(ctx, deviceID)

	clock, err := h.journal.CurrentClock(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute clock", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.ClockResponse{
		DeviceID: h.serverDeviceID,
		Clock:    clock.ToMap(),
	})
}

// Pull обрабатывает POST /api/v1/sync/pull
// Возвращает события, которых запрашивающее устройство еще не видело
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device id not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.touchDevice(ctx, deviceID)

	var req api.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode pull request", slog.Any("error", err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	since := crdt.FromMap(req.Since)

	events, err := h.journal.EventsSince(ctx, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load events", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	clock, err := h.journal.CurrentClock(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute clock", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	wireEvents := make([]api.SyncEvent, 0, len(events))
	for _, event := range events {
		wireEvents = append(wireEvents, toWireEvent(event))
	}

	h.logger.InfoContext(ctx, "pull completed",
		slog.String("device_id", deviceID),
		slog.Int("events", len(wireEvents)))

	h.sendJSON(w, api.PullResponse{
		Events: wireEvents,
		Clock:  clock.ToMap(),
	})
}

// Push обрабатывает POST /api/v1/sync/push
// Принимает события от устройства и записывает их в журнал
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device id not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.touchDevice(ctx, deviceID)

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode push request", slog.Any("error", err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	events := make([]models.Event, 0, len(req.Events))
	for i, wireEvent := range req.Events {
		event := fromWireEvent(wireEvent)
		if event.ID == "" || event.DeviceID == "" || event.Seq() == 0 {
			h.logger.WarnContext(ctx, "malformed event in push",
				slog.Int("index", i),
				slog.String("device_id", deviceID))
			http.Error(w, "Malformed event", http.StatusBadRequest)
			return
		}
		events = append(events, event)
	}

	accepted, err := h.journal.AppendEvents(ctx, events)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to append events", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	clock, err := h.journal.CurrentClock(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute clock", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "push completed",
		slog.String("device_id", deviceID),
		slog.Int("received", len(events)),
		slog.Int("accepted", accepted))

	h.sendJSON(w, api.PushResponse{
		Accepted: accepted,
		Clock:    clock.ToMap(),
	})
}

// touchDevice обновляет last_seen устройства. Ошибка не прерывает запрос
func (h *SyncHandler) touchDevice(ctx context.Context, deviceID string) {
	if err := h.devices.TouchDevice(ctx, deviceID, time.Now()); err != nil {
		h.logger.WarnContext(ctx, "failed to touch device",
			slog.String("device_id", deviceID),
			slog.Any("error", err))
	}
}

// sendJSON отправляет JSON ответ
func (h *SyncHandler) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// toWireEvent конвертирует событие в формат API
func toWireEvent(event models.Event) api.SyncEvent {
	return api.SyncEvent{
		RecordedAt:    event.RecordedAt,
		ID:            event.ID,
		DeviceID:      event.DeviceID,
		AggregateID:   event.AggregateID,
		AggregateType: event.AggregateType,
		EventType:     event.EventType,
		Payload:       event.Payload,
		Clock:         event.Clock.ToMap(),
		Version:       event.Version,
	}
}

// fromWireEvent конвертирует событие из формата API
func fromWireEvent(wireEvent api.SyncEvent) models.Event {
	return models.Event{
		RecordedAt:    wireEvent.RecordedAt,
		ID:            wireEvent.ID,
		DeviceID:      wireEvent.DeviceID,
		AggregateID:   wireEvent.AggregateID,
		AggregateType: wireEvent.AggregateType,
		EventType:     wireEvent.EventType,
		Payload:       wireEvent.Payload,
		Clock:         crdt.FromMap(wireEvent.Clock),
		Version:       wireEvent.Version,
	}
}
