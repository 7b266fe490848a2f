package handlers

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/username/fundfolio/src/logger"
)

const csrfCookieName = "_fundfolio_csrf"

// EnsureCSRFToken returns the request's CSRF token, minting and setting a new
// signed cookie when none is present. The token goes into a hidden form
// field; the middleware compares field and cookie (double submit).
func EnsureCSRFToken(w http.ResponseWriter, r *http.Request, authKey []byte) string {
	if cookie, err := r.Cookie(csrfCookieName); err == nil {
		if validCSRFToken(cookie.Value, authKey) {
			return cookie.Value
		}
	}

	token := signCSRFToken(generateRandomToken(), authKey)
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   3600,
	})
	return token
}

// CSRFMiddleware rejects mutating requests whose csrf_token form field does
// not match the signed cookie.
func CSRFMiddleware(authKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			formToken := r.FormValue("csrf_token")
			cookie, err := r.Cookie(csrfCookieName)
			if err != nil || formToken == "" || formToken != cookie.Value || !validCSRFToken(formToken, authKey) {
				logger.L.Warn("CSRF validation failed",
					"method", r.Method, "path", r.URL.Path, "remoteAddr", r.RemoteAddr)
				http.Error(w, "CSRF token validation failed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logger.L.Error("Error generating random bytes for CSRF token", "error", err)
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func signCSRFToken(token string, authKey []byte) string {
	mac := hmac.New(sha256.New, authKey)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

func validCSRFToken(signed string, authKey []byte) bool {
	idx := strings.LastIndex(signed, ".")
	if idx <= 0 {
		return false
	}
	return hmac.Equal([]byte(signCSRFToken(signed[:idx], authKey)), []byte(signed))
}
