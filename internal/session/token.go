package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired decodifica el JWT sin verificar firma (el secreto vive en el
// backend) solo para leer el claim exp. Un token ilegible o vencido se trata
// como sesión inexistente; la autoridad final sigue siendo el 401 del backend.
func tokenExpired(token string, now time.Time) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return true
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Token opaco (no JWT): no podemos anticipar el vencimiento local.
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
