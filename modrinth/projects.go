package modrinth

import (
	"context"

	"github.com/s0up4200/modrinth-go/openapi"
)

// ProjectsService calls the project endpoints
type ProjectsService struct {
	client *Client
}

// GetProject fetches a project by id or slug
func (s *ProjectsService) GetProject(ctx context.Context, idOrSlug string) (*Project, error) {
	return call[*Project](ctx, s.client, opGetProject, idParams("id|slug", idOrSlug))
}

func (s *ProjectsService) GetProjectWithHTTPInfo(ctx context.Context, idOrSlug string) (openapi.Result[*Project], error) {
	return callWithHTTPInfo[*Project](ctx, s.client, opGetProject, idParams("id|slug", idOrSlug))
}

func (s *ProjectsService) GetProjectAsync(ctx context.Context, idOrSlug string) *openapi.Future[*Project] {
	return callAsync[*Project](ctx, s.client, opGetProject, idParams("id|slug", idOrSlug))
}

// GetProjects fetches several projects in one request
func (s *ProjectsService) GetProjects(ctx context.Context, ids []string) ([]Project, error) {
	return call[[]Project](ctx, s.client, opGetProjects, idsParams(ids))
}

func (s *ProjectsService) GetProjectsWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[[]Project], error) {
	return callWithHTTPInfo[[]Project](ctx, s.client, opGetProjects, idsParams(ids))
}

func (s *ProjectsService) GetProjectsAsync(ctx context.Context, ids []string) *openapi.Future[[]Project] {
	return callAsync[[]Project](ctx, s.client, opGetProjects, idsParams(ids))
}

// GetUserProjects lists the projects of a user, by id or username
func (s *ProjectsService) GetUserProjects(ctx context.Context, idOrUsername string) ([]Project, error) {
	return call[[]Project](ctx, s.client, opGetUserProjects, idParams("id|username", idOrUsername))
}

func (s *ProjectsService) GetUserProjectsWithHTTPInfo(ctx context.Context, idOrUsername string) (openapi.Result[[]Project], error) {
	return callWithHTTPInfo[[]Project](ctx, s.client, opGetUserProjects, idParams("id|username", idOrUsername))
}

func (s *ProjectsService) GetUserProjectsAsync(ctx context.Context, idOrUsername string) *openapi.Future[[]Project] {
	return callAsync[[]Project](ctx, s.client, opGetUserProjects, idParams("id|username", idOrUsername))
}
