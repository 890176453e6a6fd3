package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
)

// WithBasicAuth restricts next to clients presenting the given credentials.
// Empty credentials leave next unrestricted.
func WithBasicAuth(username, password string) Middleware {
	return func(next http.Handler) http.Handler {
		if username == "" && password == "" {
			return next
		}

		expectedUsername := sha256.Sum256([]byte(username))
		expectedPassword := sha256.Sum256([]byte(password))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if ok {
				usernameHash := sha256.Sum256([]byte(username))
				passwordHash := sha256.Sum256([]byte(password))

				usernameMatch := (subtle.ConstantTimeCompare(usernameHash[:], expectedUsername[:]) == 1)
				passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPassword[:]) == 1)

				if usernameMatch && passwordMatch {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}
