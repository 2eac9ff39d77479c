package modrinth

import (
	"context"
	"fmt"

	"github.com/s0up4200/modrinth-go/openapi"
)

// VersionsService calls the version endpoints
type VersionsService struct {
	client *Client
}

// GetVersion fetches a version by id
func (s *VersionsService) GetVersion(ctx context.Context, id string) (*Version, error) {
	return call[*Version](ctx, s.client, opGetVersion, idParams("id", id))
}

func (s *VersionsService) GetVersionWithHTTPInfo(ctx context.Context, id string) (openapi.Result[*Version], error) {
	return callWithHTTPInfo[*Version](ctx, s.client, opGetVersion, idParams("id", id))
}

func (s *VersionsService) GetVersionAsync(ctx context.Context, id string) *openapi.Future[*Version] {
	return callAsync[*Version](ctx, s.client, opGetVersion, idParams("id", id))
}

// GetVersions fetches several versions in one request
func (s *VersionsService) GetVersions(ctx context.Context, ids []string) ([]Version, error) {
	return call[[]Version](ctx, s.client, opGetVersions, idsParams(ids))
}

func (s *VersionsService) GetVersionsWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[[]Version], error) {
	return callWithHTTPInfo[[]Version](ctx, s.client, opGetVersions, idsParams(ids))
}

func (s *VersionsService) GetVersionsAsync(ctx context.Context, ids []string) *openapi.Future[[]Version] {
	return callAsync[[]Version](ctx, s.client, opGetVersions, idsParams(ids))
}

// CreateVersion uploads a new version. Each file is sent as its own part and
// listed in data.FileParts; the first file is primary unless
// data.PrimaryFile names another part.
func (s *VersionsService) CreateVersion(ctx context.Context, data CreatableVersion, files ...openapi.File) (*Version, error) {
	return call[*Version](ctx, s.client, opCreateVersion, createVersionParams(data, files))
}

func (s *VersionsService) CreateVersionWithHTTPInfo(ctx context.Context, data CreatableVersion, files ...openapi.File) (openapi.Result[*Version], error) {
	return callWithHTTPInfo[*Version](ctx, s.client, opCreateVersion, createVersionParams(data, files))
}

func (s *VersionsService) CreateVersionAsync(ctx context.Context, data CreatableVersion, files ...openapi.File) *openapi.Future[*Version] {
	return callAsync[*Version](ctx, s.client, opCreateVersion, createVersionParams(data, files))
}

func createVersionParams(data CreatableVersion, files []openapi.File) openapi.Params {
	parts := make([]openapi.File, len(files))
	data.FileParts = make([]string, len(files))

	for i, f := range files {
		if f.PartName == "" {
			f.PartName = fmt.Sprintf("file-%d", i)
		}
		parts[i] = f
		data.FileParts[i] = f.PartName
	}

	if data.PrimaryFile == "" && len(parts) > 0 {
		data.PrimaryFile = parts[0].PartName
	}

	form := map[string]any{"data": data}
	if len(parts) > 0 {
		form["file"] = parts
	}

	return openapi.Params{Form: form}
}
