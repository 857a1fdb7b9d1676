package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/app/client/config"
	"junebug/internal/domain/catalog"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

// ErrNotAuthenticated - токена нет, нужен signin.
var ErrNotAuthenticated = errors.New("токен не найден. Выполните вход: junebug-client signin")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *SeedCache
	state      *AppState
}

// AppState хранит состояние приложения
type AppState struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	cache, err := NewSeedCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации кэша: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
		cache:      cache,
		state:      state,
	}

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil {
		app.httpClient.SetToken(token)
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func statePath(cfg *config.Config) string {
	return filepath.Join(cfg.ConfigDir, "state.json")
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	data, err := os.ReadFile(statePath(cfg))
	if os.IsNotExist(err) {
		return &AppState{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	data, err := json.Marshal(a.state)
	if err != nil {
		return err
	}
	return os.WriteFile(statePath(a.config), data, 0600)
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated проверяет, есть ли сохраненный токен
func (a *App) IsAuthenticated() bool {
	_, err := a.GetToken()
	return err == nil
}

// GetToken читает токен из TOKEN_PATH
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(a.config.TokenPath), 0700); err != nil {
		return fmt.Errorf("ошибка создания директории: %w", err)
	}
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)
	return nil
}

// ClearToken удаляет токен
func (a *App) ClearToken() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	a.httpClient.SetToken("")
	a.state = &AppState{}
	return a.saveAppState()
}

// SignUp регистрирует пользователя и сразу сохраняет выданный токен
func (a *App) SignUp(ctx context.Context, req user.SignUpRequest) (user.Account, error) {
	acc, err := a.httpClient.SignUp(ctx, req)
	if err != nil {
		return user.Account{}, err
	}

	if err := a.remember(acc); err != nil {
		return user.Account{}, err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "username", acc.Username)
	return acc, nil
}

// SignIn выполняет вход пользователя
func (a *App) SignIn(ctx context.Context, req user.SignInRequest) (user.Account, error) {
	acc, err := a.httpClient.SignIn(ctx, req)
	if err != nil {
		return user.Account{}, err
	}

	if err := a.remember(acc); err != nil {
		return user.Account{}, err
	}

	a.log.Info("Вход выполнен успешно", "username", acc.Username)
	return acc, nil
}

func (a *App) remember(acc user.Account) error {
	if err := a.SaveToken(acc.AccessToken); err != nil {
		return err
	}

	a.state = &AppState{UserID: acc.UserID, Username: acc.Username}
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	return nil
}

func (a *App) Me(ctx context.Context) (user.Profile, error) {
	if !a.IsAuthenticated() {
		return user.Profile{}, ErrNotAuthenticated
	}
	return a.httpClient.Me(ctx)
}

// Tasks возвращает задачи текущего пользователя.
func (a *App) Tasks(ctx context.Context) ([]task.Task, error) {
	owner, err := a.owner(ctx)
	if err != nil {
		return nil, err
	}
	return a.httpClient.Tasks(ctx, owner)
}

func (a *App) AddTask(ctx context.Context, text, dueDate string) (task.Task, error) {
	if !a.IsAuthenticated() {
		return task.Task{}, ErrNotAuthenticated
	}
	return a.httpClient.AddTask(ctx, task.CreateRequest{Text: text, DueDate: dueDate})
}

func (a *App) CompleteTask(ctx context.Context, id uuid.UUID, done bool) (task.Task, error) {
	if !a.IsAuthenticated() {
		return task.Task{}, ErrNotAuthenticated
	}
	return a.httpClient.CompleteTask(ctx, id, done)
}

func (a *App) DeleteTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	if !a.IsAuthenticated() {
		return task.Task{}, ErrNotAuthenticated
	}
	return a.httpClient.DeleteTask(ctx, id)
}

// Seeds берет каталог с сервера и обновляет кэш. offline читает только кэш.
func (a *App) Seeds(ctx context.Context, offline bool) ([]catalog.Seed, error) {
	if offline {
		return a.cache.Seeds(ctx)
	}

	seeds, err := a.httpClient.Seeds(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Replace(ctx, seeds); err != nil {
		a.log.Warn("Не удалось обновить кэш семян", "error", err)
	}
	return seeds, nil
}

// SeedsCachedAt - когда кэш семян обновлялся последний раз, ноль если ни разу.
func (a *App) SeedsCachedAt(ctx context.Context) (time.Time, error) {
	return a.cache.CachedAt(ctx)
}

func (a *App) Tip(ctx context.Context) (catalog.Tip, error) {
	return a.httpClient.Tip(ctx)
}

// owner - id пользователя из состояния, при его отсутствии спрашиваем /me.
func (a *App) owner(ctx context.Context) (uuid.UUID, error) {
	if !a.IsAuthenticated() {
		return uuid.Nil, ErrNotAuthenticated
	}
	if a.state.UserID != uuid.Nil {
		return a.state.UserID, nil
	}

	me, err := a.httpClient.Me(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	a.state = &AppState{UserID: me.UserID, Username: me.Username}
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	return me.UserID, nil
}

// Close освобождает локальный кэш
func (a *App) Close() error {
	return a.cache.Close()
}
