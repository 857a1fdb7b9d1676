// Package index serves the landing route with the list of registered endpoints.
package index

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"
)

type Handler struct {
	middleware huma.Middlewares
	openAPI    func() *huma.OpenAPI
}

func NewHandler(middleware huma.Middlewares) *Handler {
	return &Handler{middleware: middleware}
}

func (h *Handler) SetupRoutes(api huma.API) {
	h.openAPI = api.OpenAPI
	huma.Register(api, huma.Operation{
		OperationID: "index",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Список эндпоинтов",
		Tags:        []string{"meta"},
		Middlewares: h.middleware,
	}, h.index)
}

type Input struct{}

type Output struct {
	Body Body
}

type Body struct {
	Success  bool     `json:"success"`
	Response []string `json:"response" doc:"METHOD /path для каждой операции"`
}

func (h *Handler) index(_ context.Context, _ *Input) (*Output, error) {
	return &Output{Body: Body{Success: true, Response: Endpoints(h.openAPI())}}, nil
}

// Endpoints lists every operation in the OpenAPI document as "METHOD /path", sorted by path.
func Endpoints(doc *huma.OpenAPI) []string {
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	endpoints := []string{}
	for _, p := range paths {
		item := doc.Paths[p]
		for _, m := range []struct {
			method string
			op     *huma.Operation
		}{
			{http.MethodGet, item.Get},
			{http.MethodPost, item.Post},
			{http.MethodPut, item.Put},
			{http.MethodPatch, item.Patch},
			{http.MethodDelete, item.Delete},
		} {
			if m.op != nil {
				endpoints = append(endpoints, m.method+" "+p)
			}
		}
	}
	return endpoints
}
