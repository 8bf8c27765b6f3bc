package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/schedulepro/calendar/internal/model"
)

const defaultRequestTimeout = 15 * time.Second

// Client HTTP-клиент API встреч. Ошибки сервера непрозрачны для ядра:
// клиент возвращает их как есть, без повторов, состояние не меняется.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиент API. baseURL указывает на корень API,
// например http://localhost:5231/api
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
}

// Appointments получает все встречи пользователя
func (c *Client) Appointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/appointments/"+url.PathEscape(userID), nil, &appointments)
	if err != nil {
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}
	return appointments, nil
}

// AppointmentsByDate получает встречи пользователя за окно дат.
// Моменты передаются как ISO-8601 в UTC; нулевой end опускается.
func (c *Client) AppointmentsByDate(ctx context.Context, userID string, start, end time.Time) ([]model.Appointment, error) {
	query := url.Values{}
	query.Set("startDate", start.UTC().Format(time.RFC3339))
	if !end.IsZero() {
		query.Set("endDate", end.UTC().Format(time.RFC3339))
	}
	endpoint := c.baseURL + "/appointments/" + url.PathEscape(userID) + "/bydate?" + query.Encode()

	var appointments []model.Appointment
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &appointments); err != nil {
		return nil, fmt.Errorf("fetch appointments by date: %w", err)
	}
	return appointments, nil
}

// Create создаёт встречу и возвращает её с присвоенным сервером id
func (c *Client) Create(ctx context.Context, payload model.Appointment) (*model.Appointment, error) {
	var created model.Appointment
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/appointments", payload, &created); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	c.logger.Info("Appointment created on server",
		zap.String("appointment_id", created.ID),
		zap.String("title", created.Title))
	return &created, nil
}

// Update обновляет встречу по id из payload
func (c *Client) Update(ctx context.Context, userID string, payload model.Appointment) (*model.Appointment, error) {
	if payload.ID == "" {
		return nil, fmt.Errorf("update appointment: missing id")
	}
	endpoint := c.baseURL + "/appointments/" + url.PathEscape(payload.ID) + "/" + url.PathEscape(userID)

	var updated model.Appointment
	if err := c.doJSON(ctx, http.MethodPut, endpoint, payload, &updated); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return &updated, nil
}

// Delete удаляет встречу
func (c *Client) Delete(ctx context.Context, id, userID string) error {
	endpoint := c.baseURL + "/appointments/" + url.PathEscape(id) + "/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	c.logger.Info("Appointment deleted on server", zap.String("appointment_id", id))
	return nil
}

// Users получает справочник пользователей для выбора гостей
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/users", nil, &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

// doJSON выполняет запрос с JSON-телом и декодирует JSON-ответ в out (если не nil)
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var _ Backend = (*Client)(nil)
