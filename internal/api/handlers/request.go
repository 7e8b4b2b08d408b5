package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"Postagram/internal/api/middleware"
	"Postagram/internal/core/result"

	"github.com/go-chi/chi/v5"
	"github.com/xeipuuv/gojsonschema"
)

// MaxBodyBytes bounds every JSON request body
const MaxBodyBytes = 1 << 20

// MsgInvalidBody is returned when the body is not JSON at all
const MsgInvalidBody = "Invalid request body"

// BadRequest is an error whose text is shown to the client verbatim
type BadRequest string

func (e BadRequest) Error() string { return string(e) }

// Schema is a compiled JSON Schema for one request body
type Schema struct {
	schema *gojsonschema.Schema
}

// MustSchema compiles a JSON Schema document. It panics on an invalid schema,
// so schemas are compiled once at package init.
func MustSchema(doc string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return &Schema{schema: s}
}

// DecodeJSON reads the body, validates it against schema and unmarshals it into dst.
// The returned error's message is safe to show to clients.
func DecodeJSON(r *http.Request, schema *Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return BadRequest(MsgInvalidBody)
	}
	if len(body) > MaxBodyBytes {
		return BadRequest("Request body too large")
	}

	if !json.Valid(body) {
		return BadRequest(MsgInvalidBody)
	}

	res, err := schema.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return BadRequest(MsgInvalidBody)
	}
	if !res.Valid() {
		messages := make([]string, 0, len(res.Errors()))
		for _, desc := range res.Errors() {
			messages = append(messages, desc.String())
		}
		return BadRequest("Invalid request: " + strings.Join(messages, "; "))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return BadRequest(MsgInvalidBody)
	}
	return nil
}

// Page reads the take and skip query parameters. Missing values are 0 (no limit).
func Page(r *http.Request) (take, skip int, err error) {
	take, err = queryInt(r, "take")
	if err != nil {
		return 0, 0, err
	}
	skip, err = queryInt(r, "skip")
	if err != nil {
		return 0, 0, err
	}
	return take, skip, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, BadRequest(result.InvalidPagination)
	}
	return n, nil
}

// ID returns the {id} URL parameter
func ID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// AuthenticatedUser returns the user id injected by the auth middleware.
// It writes a 401 and returns false when the request is anonymous.
func AuthenticatedUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		WriteJSON(w, http.StatusUnauthorized, result.Invalid[any]("Authentication required"))
		return "", false
	}
	return userID, true
}
