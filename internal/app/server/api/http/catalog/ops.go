package catalog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) seedsOp() huma.Operation {
	return huma.Operation{
		OperationID: "seeds-list",
		Method:      http.MethodGet,
		Path:        "/seeds",
		Summary:     "Каталог семян",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) seedOp() huma.Operation {
	return huma.Operation{
		OperationID: "seeds-get",
		Method:      http.MethodGet,
		Path:        "/seeds/{seedId}",
		Summary:     "Семя из каталога",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) tipOp() huma.Operation {
	return huma.Operation{
		OperationID: "tips-random",
		Method:      http.MethodGet,
		Path:        "/tips",
		Summary:     "Случайный совет",
		Tags:        []string{"catalog"},
		Middlewares: h.middleware,
	}
}
