// Package admin guards the dashboard routes with the single shared
// passphrase. Only a bcrypt hash of the passphrase is configured.
package admin

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"vanta-be/internal/logger"
	"vanta-be/internal/utils"
)

const PassphraseHeader = "X-Admin-Passphrase"

var (
	ErrUnauthorized  = errors.New("invalid admin passphrase")
	ErrNotConfigured = errors.New("admin passphrase not configured")
)

type Gate struct {
	hash []byte
}

// NewGate takes the bcrypt hash of the passphrase. An empty hash locks the
// gate entirely.
func NewGate(hash string) *Gate {
	return &Gate{hash: []byte(strings.TrimSpace(hash))}
}

func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (g *Gate) Check(passphrase string) error {
	if len(g.hash) == 0 {
		return ErrNotConfigured
	}
	if passphrase == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(passphrase)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// ExtractPassphrase reads the dedicated header, falling back to a bearer
// token.
func ExtractPassphrase(r *http.Request) string {
	if p := r.Header.Get(PassphraseHeader); p != "" {
		return p
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.Check(ExtractPassphrase(r)); err != nil {
			logger.FromCtx(r.Context()).Warn("admin gate rejected request",
				zap.String("layer", "admin"),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
