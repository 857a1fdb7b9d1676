package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/app/client/config"
	"junebug/internal/domain/catalog"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

// ServerError - неуспешный ответ API, Message берется из поля response.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Junebug-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера и хранилища
func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/health", nil, nil)
}

func (h *httpClient) SignUp(ctx context.Context, req user.SignUpRequest) (user.Account, error) {
	var acc user.Account
	err := h.call(ctx, http.MethodPost, "/signup", req, &acc)
	return acc, err
}

func (h *httpClient) SignIn(ctx context.Context, req user.SignInRequest) (user.Account, error) {
	var acc user.Account
	err := h.call(ctx, http.MethodPost, "/signin", req, &acc)
	return acc, err
}

func (h *httpClient) Me(ctx context.Context) (user.Profile, error) {
	var p user.Profile
	err := h.call(ctx, http.MethodGet, "/me", nil, &p)
	return p, err
}

func (h *httpClient) Tasks(ctx context.Context, owner uuid.UUID) ([]task.Task, error) {
	var tasks []task.Task
	err := h.call(ctx, http.MethodGet, "/tasks/"+owner.String(), nil, &tasks)
	return tasks, err
}

func (h *httpClient) AddTask(ctx context.Context, req task.CreateRequest) (task.Task, error) {
	var t task.Task
	err := h.call(ctx, http.MethodPost, "/tasks", req, &t)
	return t, err
}

func (h *httpClient) CompleteTask(ctx context.Context, id uuid.UUID, done bool) (task.Task, error) {
	var t task.Task
	err := h.call(ctx, http.MethodPatch, "/tasks/"+id.String()+"/done", task.DoneRequest{Done: done}, &t)
	return t, err
}

func (h *httpClient) DeleteTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	var t task.Task
	err := h.call(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, &t)
	return t, err
}

func (h *httpClient) Seeds(ctx context.Context) ([]catalog.Seed, error) {
	var seeds []catalog.Seed
	err := h.call(ctx, http.MethodGet, "/seeds", nil, &seeds)
	return seeds, err
}

func (h *httpClient) Tip(ctx context.Context) (catalog.Tip, error) {
	var tip catalog.Tip
	err := h.call(ctx, http.MethodGet, "/tips", nil, &tip)
	return tip, err
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

// parseResponse разворачивает конверт {success, response} в result.
func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	var envelope struct {
		Success  bool            `json:"success"`
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &ServerError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if resp.StatusCode >= 400 || !envelope.Success {
		var msg string
		if err := json.Unmarshal(envelope.Response, &msg); err != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Response, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
