// Package handlers holds the HTTP handlers of the procurement context. Each
// handler is a struct with an Execute method registered in package api.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ralungei/fusion-procurement/pkg/auth"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"supplier not found: party id 300000047507499"`
} // @name ErrorResponse

// actingUser returns the person on whose behalf the request runs. It writes
// 401 and returns false when there is none.
func actingUser(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	id, err := auth.PersonIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return 0, false
	}
	return models.ID(id), true
}

// pathID parses a positive id path parameter, writing 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (models.ID, bool) {
	id, ok := models.ParseID(chi.URLParam(r, name))
	if !ok {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("%s must be a positive integer", name)})
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; def is used when absent.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("%s must be a non-negative integer", name)})
		return 0, false
	}
	return v, true
}

// Terms accepts either one string or an array of strings.
type Terms []string // @name Terms

// UnmarshalJSON implements json.Unmarshaler.
func (t *Terms) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*t = Terms{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("product_query_terms must be a string or an array of strings")
	}
	*t = many
	return nil
}
