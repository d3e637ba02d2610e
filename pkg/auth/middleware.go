package auth

import (
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/ralungei/fusion-procurement/pkg/httpx"
	"github.com/ralungei/fusion-procurement/pkg/logger"
)

const sessionName = "procurement_session"
const sessionPersonIDKey = "person_id"

// ActingUser is a chi middleware that resolves the person on whose behalf ERP
// writes are made. The configured defaultPersonID is used unless the session
// cookie carries a person_id, which then takes precedence. A session whose
// person_id is present but malformed is rejected with 401.
//
// After this middleware, handlers can safely call auth.PersonIDFromCtx(r.Context()).
func ActingUser(store sessions.Store, defaultPersonID int64, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			personID := defaultPersonID

			if store != nil {
				session, err := store.Get(r, sessionName)
				if err != nil {
					log.WarnContext(r.Context(), "invalid session cookie", "error", err)
					httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
					return
				}

				if raw, ok := session.Values[sessionPersonIDKey]; ok {
					str, _ := raw.(string)
					id, err := strconv.ParseInt(str, 10, 64)
					if err != nil || id <= 0 {
						log.WarnContext(r.Context(), "invalid person_id in session", "person_id", raw)
						httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
						return
					}
					personID = id
				}
			}

			if personID <= 0 {
				log.WarnContext(r.Context(), "no acting user configured")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPersonID(r.Context(), personID)))
		})
	}
}
