package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Заголовки идентификации клиента. Аутентификацию выполняет внешний шлюз,
// сюда приходят уже проверенные значения. Имя передаётся URL-encoded,
// чтобы поддержать не-ASCII символы в заголовке.
const (
	HeaderClientName  = "X-Client-Name"
	HeaderClientPhone = "X-Client-Phone"
)

type identityContextKey struct{}

// Auth проверяет наличие идентификации клиента и кладет её в контекст.
// Требуется хотя бы один из заголовков X-Client-Name / X-Client-Phone.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromHeaders(r)
		if identity.IsEmpty() {
			handlers.RespondUnauthorized(w, "требуется идентификация клиента")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext извлекает идентификацию клиента из контекста запроса.
// Вне защищённых маршрутов возвращает пустую идентификацию.
func IdentityFromContext(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(identityContextKey{}).(domain.Identity)
	if !ok {
		return domain.Identity{}
	}
	return identity
}

func identityFromHeaders(r *http.Request) domain.Identity {
	var identity domain.Identity

	if raw := strings.TrimSpace(r.Header.Get(HeaderClientName)); raw != "" {
		name := raw
		if decoded, err := url.QueryUnescape(raw); err == nil {
			name = decoded
		}
		identity.Name = &name
	}

	if phone := strings.TrimSpace(r.Header.Get(HeaderClientPhone)); phone != "" {
		identity.Phone = &phone
	}

	return identity
}
