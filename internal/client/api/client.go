package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/scopekeeper/internal/crdt"
	"github.com/iudanet/scopekeeper/internal/models"
	"github.com/iudanet/scopekeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с hub-сервером.
// Реализует sync.Transport поверх REST API сервера.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает access token для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Pair подключает это устройство к серверу по одноразовому коду
func (c *Client) Pair(ctx context.Context, req api.PairRequest) (*api.PairResponse, error) {
	var resp api.PairResponse
	err := c.doRequest(ctx, "POST", "/api/v1/pair", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("pair request failed: %w", err)
	}
	return &resp, nil
}

// FetchRemoteClock возвращает текущие векторные часы сервера
func (c *Client) FetchRemoteClock(ctx context.Context) (crdt.VectorClock, error) {
	var resp api.ClockResponse
	err := c.doRequest(ctx, "GET", "/api/v1/sync/clock", nil, &resp)
	if err != nil {
		return crdt.VectorClock{}, fmt.Errorf("clock request failed: %w", err)
	}
	return crdt.FromMap(resp.Clock), nil
}

// FetchEventsSince возвращает события сервера, не отраженные в часах since
func (c *Client) FetchEventsSince(ctx context.Context, since crdt.VectorClock) ([]models.Event, error) {
	req := api.PullRequest{Since: since.ToMap()}

	var resp api.PullResponse
	err := c.doRequest(ctx, "POST", "/api/v1/sync/pull", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}

	events := make([]models.Event, 0, len(resp.Events))
	for _, wire := range resp.Events {
		events = append(events, fromWireEvent(wire))
	}
	return events, nil
}

// PushEvents отправляет локальные события серверу
func (c *Client) PushEvents(ctx context.Context, events []models.Event) error {
	req := api.PushRequest{Events: make([]api.SyncEvent, 0, len(events))}
	for _, event := range events {
		req.Events = append(req.Events, toWireEvent(event))
	}

	var resp api.PushResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/sync/push", req, &resp); err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	return nil
}

// toWireEvent конвертирует событие в wire-формат
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

// fromWireEvent конвертирует событие из wire-формата
func fromWireEvent(wire api.SyncEvent) models.Event {
	return models.Event{
		RecordedAt:    wire.RecordedAt,
		ID:            wire.ID,
		DeviceID:      wire.DeviceID,
		AggregateID:   wire.AggregateID,
		AggregateType: wire.AggregateType,
		EventType:     wire.EventType,
		Payload:       wire.Payload,
		Clock:         crdt.FromMap(wire.Clock),
		Version:       wire.Version,
	}
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
