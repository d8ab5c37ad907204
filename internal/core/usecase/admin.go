package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

// writeMarkers are XQuery constructs that modify the database. Raw query
// execution is read-only; anything matching one of these is rejected
// before it reaches the store.
var writeMarkers = []string{
	"update insert",
	"update delete",
	"update replace",
	"update rename",
	"update value",
	"xmldb:store",
	"xmldb:remove",
	"xmldb:create-collection",
	"xmldb:copy",
	"xmldb:move",
	"xmldb:rename",
	"sm:chmod",
	"sm:chown",
	"file:serialize",
}

type AdminUseCase struct {
	store    ports.DocumentStore
	appPath  string
	dataPath string
}

func NewAdminUseCase(store ports.DocumentStore, appPath, dataPath string) *AdminUseCase {
	return &AdminUseCase{store: store, appPath: appPath, dataPath: dataPath}
}

func (uc *AdminUseCase) Status(ctx context.Context) (*domain.StoreStatus, error) {
	status, err := uc.store.HealthCheck(ctx)
	if status != nil {
		status.AppPath = uc.appPath
		status.DataPath = uc.dataPath
	}
	return status, err
}

func (uc *AdminUseCase) ListCollection(ctx context.Context, path string) (*domain.CollectionContents, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = uc.dataPath
	}
	if !strings.HasPrefix(path, "/db") {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "list collection", fmt.Errorf("path must start with /db, got %q", path))
	}
	return uc.store.ListCollection(ctx, path)
}

// ExecuteRaw runs an arbitrary read-only XQuery expression.
func (uc *AdminUseCase) ExecuteRaw(ctx context.Context, xquery string, howMany int) (string, error) {
	if strings.TrimSpace(xquery) == "" {
		return "", domain.WrapError(domain.ErrInvalidRequest, "execute raw", fmt.Errorf("query is required"))
	}
	lowered := strings.ToLower(xquery)
	for _, marker := range writeMarkers {
		if strings.Contains(lowered, marker) {
			return "", domain.WrapError(domain.ErrInvalidRequest, "execute raw", fmt.Errorf("write operations are not allowed (%s)", marker))
		}
	}
	return uc.store.ExecuteQuery(ctx, xquery, howMany)
}
