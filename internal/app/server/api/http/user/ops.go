package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signUpOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-signup",
		Method:        http.MethodPost,
		Path:          "/signup",
		Summary:       "Регистрация пользователя",
		Description:   "Создает пользователя и возвращает постоянный токен доступа.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) signInOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-signin",
		Method:      http.MethodPost,
		Path:        "/signin",
		Summary:     "Вход по имени и паролю",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-me",
		Method:      http.MethodGet,
		Path:        "/me",
		Summary:     "Профиль текущего пользователя",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authenticated,
	}
}

func (h *Handler) updateMeOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-me-update",
		Method:      http.MethodPatch,
		Path:        "/me",
		Summary:     "Изменить имя и местоположение",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authenticated,
	}
}
