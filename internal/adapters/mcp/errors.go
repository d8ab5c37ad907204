package mcpadapter

import (
	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// errorLabel prefixes tool error messages so callers can react to the
// failure class without parsing prose.
func errorLabel(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case domain.IsKind(err, domain.ErrNotFound):
		return "not_found"
	case domain.IsKind(err, domain.ErrAuth):
		return "auth_error"
	case domain.IsKind(err, domain.ErrConnection):
		return "backend_unreachable"
	case domain.IsKind(err, domain.ErrParse):
		return "parse_error"
	default:
		return "query_error"
	}
}
