package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/internal/config"
	"github.com/vlima/reforma-manager-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyClaims guarda as claims do token validado no contexto
	ContextKeyClaims contextKey = "claims"
)

// publicPaths não exigem token
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware valida o bearer token JWT assinado com o segredo da aplicação
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token é obrigatório", nil)
				return
			}

			claims, err := validateToken(tokenString, cfg.Auth.Secret)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, jwt.ErrTokenExpired) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "token inválido")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidas")
	}

	return claims, nil
}
