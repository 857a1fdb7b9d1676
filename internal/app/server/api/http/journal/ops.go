package journal

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-list",
		Method:      http.MethodGet,
		Path:        "/journal",
		Summary:     "Общий журнал",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) postOp() huma.Operation {
	return huma.Operation{
		OperationID: "journal-post",
		Method:      http.MethodPost,
		Path:        "/journal",
		Summary:     "Добавить запись в журнал",
		Description: "Непустое сообщение дописывается в журнал. В ответе всегда весь журнал.",
		Tags:        []string{"journal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
