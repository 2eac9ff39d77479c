package modrinth

import (
	"context"

	"github.com/s0up4200/modrinth-go/openapi"
)

// UsersService calls the user endpoints
type UsersService struct {
	client *Client
}

// GetUser fetches a user by id or username
func (s *UsersService) GetUser(ctx context.Context, idOrUsername string) (*User, error) {
	return call[*User](ctx, s.client, opGetUser, idParams("id|username", idOrUsername))
}

func (s *UsersService) GetUserWithHTTPInfo(ctx context.Context, idOrUsername string) (openapi.Result[*User], error) {
	return callWithHTTPInfo[*User](ctx, s.client, opGetUser, idParams("id|username", idOrUsername))
}

func (s *UsersService) GetUserAsync(ctx context.Context, idOrUsername string) *openapi.Future[*User] {
	return callAsync[*User](ctx, s.client, opGetUser, idParams("id|username", idOrUsername))
}

// GetUserFromAuth fetches the user the configured token belongs to
func (s *UsersService) GetUserFromAuth(ctx context.Context) (*User, error) {
	return call[*User](ctx, s.client, opGetUserFromAuth, openapi.Params{})
}

func (s *UsersService) GetUserFromAuthWithHTTPInfo(ctx context.Context) (openapi.Result[*User], error) {
	return callWithHTTPInfo[*User](ctx, s.client, opGetUserFromAuth, openapi.Params{})
}

func (s *UsersService) GetUserFromAuthAsync(ctx context.Context) *openapi.Future[*User] {
	return callAsync[*User](ctx, s.client, opGetUserFromAuth, openapi.Params{})
}

// GetUsers fetches several users in one request
func (s *UsersService) GetUsers(ctx context.Context, ids []string) ([]User, error) {
	return call[[]User](ctx, s.client, opGetUsers, idsParams(ids))
}

func (s *UsersService) GetUsersWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[[]User], error) {
	return callWithHTTPInfo[[]User](ctx, s.client, opGetUsers, idsParams(ids))
}

func (s *UsersService) GetUsersAsync(ctx context.Context, ids []string) *openapi.Future[[]User] {
	return callAsync[[]User](ctx, s.client, opGetUsers, idsParams(ids))
}

// ModifyUser updates the non-nil fields of changes
func (s *UsersService) ModifyUser(ctx context.Context, idOrUsername string, changes EditableUser) error {
	_, err := call[openapi.NoContent](ctx, s.client, opModifyUser, modifyUserParams(idOrUsername, changes))
	return err
}

func (s *UsersService) ModifyUserWithHTTPInfo(ctx context.Context, idOrUsername string, changes EditableUser) (openapi.Result[openapi.NoContent], error) {
	return callWithHTTPInfo[openapi.NoContent](ctx, s.client, opModifyUser, modifyUserParams(idOrUsername, changes))
}

func (s *UsersService) ModifyUserAsync(ctx context.Context, idOrUsername string, changes EditableUser) *openapi.Future[openapi.NoContent] {
	return callAsync[openapi.NoContent](ctx, s.client, opModifyUser, modifyUserParams(idOrUsername, changes))
}

func modifyUserParams(idOrUsername string, changes EditableUser) openapi.Params {
	params := idParams("id|username", idOrUsername)
	params.Body = changes
	return params
}
