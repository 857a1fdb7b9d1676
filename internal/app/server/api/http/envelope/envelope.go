// Package envelope renders every response as {"success": ..., "response": ...}.
package envelope

import (
	"errors"
	"net/http"
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/goccy/go-json"

	"junebug/internal/domain/errs"
)

type Body[T any] struct {
	Success  bool `json:"success" doc:"Признак успешного ответа"`
	Response T    `json:"response"`
}

// Output is a huma response whose status is taken from the Status field.
type Output[T any] struct {
	Status int
	Body   Body[T]
}

func OK[T any](v T) *Output[T] {
	return respond(http.StatusOK, v)
}

func Created[T any](v T) *Output[T] {
	return respond(http.StatusCreated, v)
}

func respond[T any](status int, v T) *Output[T] {
	return &Output[T]{
		Status: status,
		Body:   Body[T]{Success: true, Response: v},
	}
}

// Error - неуспешный ответ. Реализует huma.StatusError, поэтому его можно вернуть из хендлера.
type Error struct {
	status   int
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Message  string `json:"message,omitempty"`
}

func (e *Error) Error() string {
	return e.Response
}

func (e *Error) GetStatus() int {
	return e.status
}

func (e *Error) ContentType(string) string {
	return "application/json"
}

func Fail(status int, response string) *Error {
	return &Error{status: status, Response: response}
}

func BadRequest(response string) *Error {
	return Fail(http.StatusBadRequest, response)
}

func NotFound(response string) *Error {
	return Fail(http.StatusNotFound, response)
}

func Unauthorized(response string) *Error {
	return Fail(http.StatusUnauthorized, response)
}

// Write отдает ошибку вне huma, например из роутера chi.
func Write(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(e)
}

// NotFoundHandler и MethodNotAllowedHandler заменяют текстовые ответы chi.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	Write(w, NotFound("Route not found: "+r.Method+" "+r.URL.Path))
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	Write(w, Fail(http.StatusMethodNotAllowed, "Method not allowed: "+r.Method+" "+r.URL.Path))
}

// FromError maps a service error onto a response: not-found kinds become 404,
// everything else is a 400 carrying the error text.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	msg := err.Error()
	var de *errs.DomainError
	if errors.As(err, &de) {
		msg = de.Error()
	}

	if errors.Is(err, errs.ErrNotFound) {
		return NotFound(msg)
	}
	return BadRequest(msg)
}

// NewError replaces huma.NewError so framework errors use the same envelope.
// Schema validation failures are reported as 400.
func NewError(status int, msg string, errList ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errList))
	for _, err := range errList {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	return &Error{
		status:   status,
		Response: msg,
		Message:  strings.Join(details, "; "),
	}
}

// HumaConfig is huma.DefaultConfig without the $schema links, bodies carry only the envelope fields.
func HumaConfig(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	config.Transformers = nil
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", SchemaNamer)
	return config
}

// SchemaNamer prefixes domain types with their package: task.Patch and note.Patch
// would otherwise collide in the registry.
func SchemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || !strings.Contains(t.PkgPath(), "/domain/") {
		return name
	}

	pkg := path.Base(t.PkgPath())
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// Install подменяет фабрику ошибок huma. Вызывается один раз при сборке API.
func Install() {
	huma.NewError = NewError
}
