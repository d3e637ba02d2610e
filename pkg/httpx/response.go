package httpx

import (
	"encoding/json"
	"net/http"
)

// encodeFailure is written when a response value cannot be marshalled.
var encodeFailure = []byte(`{"error":"response encoding failed"}` + "\n")

// JSON writes v as the response body with the given status. v is marshalled
// before any header goes out, so a value that cannot be encoded turns into a
// 500 instead of a truncated 2xx body. ERP data is never cached by clients.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status, body = http.StatusInternalServerError, encodeFailure
	} else {
		body = append(body, '\n')
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
