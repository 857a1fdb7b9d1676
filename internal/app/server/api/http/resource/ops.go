package resource

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler[T, C, P]) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.names.Plural + "-create",
		Method:        http.MethodPost,
		Path:          "/" + h.names.Plural,
		Summary:       "Создать " + h.names.Singular,
		Description:   "Владельцем становится текущий пользователь, поле владельца в теле игнорируется.",
		Tags:          []string{h.names.Plural},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler[T, C, P]) listOp() huma.Operation {
	return huma.Operation{
		OperationID: h.names.Plural + "-list",
		Method:      http.MethodGet,
		Path:        "/" + h.names.Plural + "/{userId}",
		Summary:     "Список " + h.names.Plural + " пользователя",
		Tags:        []string{h.names.Plural},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, C, P]) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: h.names.Plural + "-update",
		Method:      http.MethodPatch,
		Path:        "/" + h.names.Plural + "/{id}",
		Summary:     "Частично обновить " + h.names.Singular,
		Tags:        []string{h.names.Plural},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, C, P]) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: h.names.Plural + "-delete",
		Method:      http.MethodDelete,
		Path:        "/" + h.names.Plural + "/{id}",
		Summary:     "Удалить " + h.names.Singular,
		Tags:        []string{h.names.Plural},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
