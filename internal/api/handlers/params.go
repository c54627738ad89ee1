package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ParseDateParam извлекает обязательный date query-параметр формата YYYY-MM-DD
func ParseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing query parameter %q", name)
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format %s", raw, domain.DateFormat)
	}

	return date, nil
}
