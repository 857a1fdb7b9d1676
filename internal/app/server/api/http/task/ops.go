package task

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) doneOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-done",
		Method:      http.MethodPatch,
		Path:        "/tasks/{id}/done",
		Summary:     "Отметить задачу выполненной",
		Description: "Ставит или снимает отметку о выполнении, остальные поля не меняются.",
		Tags:        []string{"tasks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
