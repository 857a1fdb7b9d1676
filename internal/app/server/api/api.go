// GET    /                      # Список эндпоинтов
// GET    /health                # Проверка сервиса и хранилища
// POST   /signup, /signin       # Регистрация и вход (публичные)
// GET    /me, PATCH /me         # Профиль (auth)
// GET    /seeds, /seeds/{id}    # Каталог семян (публичный)
// GET    /tips                  # Случайный совет (публичный)
// POST   /plants|tasks|notes    # Создать запись (auth)
// GET    /<plural>/{userId}     # Записи пользователя (auth)
// PATCH  /tasks|notes/{id}      # Обновить (auth)
// PATCH  /tasks/{id}/done       # Отметить выполненной (auth)
// DELETE /<plural>/{id}         # Удалить (auth)
// GET    /journal, POST /journal # Общий журнал (auth)

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"golang.org/x/exp/slog"

	catalogAPI "junebug/internal/app/server/api/http/catalog"
	"junebug/internal/app/server/api/http/envelope"
	healthAPI "junebug/internal/app/server/api/http/health"
	indexAPI "junebug/internal/app/server/api/http/index"
	journalAPI "junebug/internal/app/server/api/http/journal"
	"junebug/internal/app/server/api/http/middleware"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/app/server/api/http/middleware/logger"
	"junebug/internal/app/server/api/http/resource"
	taskAPI "junebug/internal/app/server/api/http/task"
	userAPI "junebug/internal/app/server/api/http/user"
	"junebug/internal/domain/catalog"
	"junebug/internal/domain/journal"
	"junebug/internal/domain/note"
	"junebug/internal/domain/plant"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
	"junebug/internal/infrastructure/storage"
)

type Router interface {
	SetupRoutes(api huma.API)
}

type Services struct {
	Users   *user.Service
	Plants  *plant.Service
	Tasks   *task.Service
	Notes   *note.Service
	Journal *journal.Service
	Catalog *catalog.Service
}

// NewServices собирает доменные сервисы поверх выбранного хранилища.
func NewServices(store storage.Storage, log *slog.Logger) *Services {
	catalogService := catalog.NewService(store.Catalog(), log)

	return &Services{
		Users:   user.NewService(store.Users(), user.NewCredentialsValidator(), log),
		Plants:  plant.NewService(store.Plants(), catalogService, log),
		Tasks:   task.NewService(store.Tasks(), log),
		Notes:   note.NewService(store.Notes(), log),
		Journal: journal.NewService(store.Journal(), log),
		Catalog: catalogService,
	}
}

// New создает роутер со ВСЕМИ операциями через huma.Register.
// Второе значение нужно тестам и генерации документации.
func New(store storage.Storage, services *Services, log *slog.Logger) (http.Handler, huma.API) {
	envelope.Install()

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)
	mux.NotFound(envelope.NotFoundHandler)
	mux.MethodNotAllowed(envelope.MethodNotAllowedHandler)

	config := envelope.HumaConfig("Junebug Journal API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	for _, r := range routers(store, services, log) {
		r.SetupRoutes(API)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	return cors(mux), API
}

func routers(store storage.Storage, s *Services, log *slog.Logger) []Router {
	authMW := auth.New(s.Users, log)
	middlewares := middleware.NewContainer(logger.New(log).Middleware())

	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	protected := middlewares.GetAllAndClear()

	return []Router{
		indexAPI.NewHandler(public),
		healthAPI.NewHandler(store, log, public),
		userAPI.NewHandler(s.Users, log, public, protected),
		catalogAPI.NewHandler(s.Catalog, log, public),
		resource.NewHandler[plant.Plant, plant.CreateRequest, struct{}](
			resource.Names{Singular: "plant", Plural: "plants"}, s.Plants, nil, log, protected),
		resource.NewHandler[task.Task, task.CreateRequest, task.Patch](
			resource.Names{Singular: "task", Plural: "tasks"}, s.Tasks, s.Tasks, log, protected),
		taskAPI.NewHandler(s.Tasks, log, protected),
		resource.NewHandler[note.Note, note.CreateRequest, note.Patch](
			resource.Names{Singular: "note", Plural: "notes"}, s.Notes, s.Notes, log, protected),
		journalAPI.NewHandler(s.Journal, log, protected),
	}
}
