package modrinth

import (
	"net/http"

	"github.com/s0up4200/modrinth-go/openapi"
)

// AuthHeader is the API key name used by every authenticated operation
const AuthHeader = openapi.HeaderAuthorization

const (
	tagNotifications = "notifications"
	tagUsers         = "users"
	tagProjects      = "projects"
	tagVersions      = "versions"
)

var jsonOnly = []string{openapi.ContentTypeJSON}

func authErrorResponse() openapi.ResponseSpec {
	return openapi.ResponseSpec{
		Kind:    openapi.BodyJSON,
		Model:   func() any { return new(AuthError) },
		IsError: true,
	}
}

func jsonResponse[T any]() openapi.ResponseSpec {
	return openapi.ResponseSpec{Kind: openapi.BodyJSON, Model: func() any { return new(T) }}
}

func noContent() openapi.ResponseSpec {
	return openapi.ResponseSpec{Kind: openapi.BodyNone}
}

func pathParam(name string) openapi.Param {
	return openapi.Param{Name: name, Style: openapi.StyleSimple, Required: true, Schema: ""}
}

// idsParam is the exploded ids list, sent as ids=a&ids=b
func idsParam() openapi.Param {
	return openapi.Param{Name: "ids", Style: openapi.StyleForm, Explode: true, Required: true, Schema: []string{}}
}

var (
	opGetNotification = &openapi.Operation{
		ID:         "getNotification",
		Summary:    "Get notification from ID",
		Tags:       []string{tagNotifications},
		Method:     http.MethodGet,
		Path:       "/notification/{id}",
		PathParams: []openapi.Param{pathParam("id")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[Notification](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetNotifications = &openapi.Operation{
		ID:          "getNotifications",
		Summary:     "Get multiple notifications",
		Tags:        []string{tagNotifications},
		Method:      http.MethodGet,
		Path:        "/notifications",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]Notification](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetUserNotifications = &openapi.Operation{
		ID:         "getUserNotifications",
		Summary:    "Get user's notifications",
		Tags:       []string{tagNotifications},
		Method:     http.MethodGet,
		Path:       "/user/{id|username}/notifications",
		PathParams: []openapi.Param{pathParam("id|username")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]Notification](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opReadNotification = &openapi.Operation{
		ID:         "readNotification",
		Summary:    "Mark notification as read",
		Tags:       []string{tagNotifications},
		Method:     http.MethodPatch,
		Path:       "/notification/{id}",
		PathParams: []openapi.Param{pathParam("id")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyNone,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusNoContent:    noContent(),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opReadNotifications = &openapi.Operation{
		ID:          "readNotifications",
		Summary:     "Mark multiple notifications as read",
		Tags:        []string{tagNotifications},
		Method:      http.MethodPatch,
		Path:        "/notifications",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyNone,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusNoContent:    noContent(),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opDeleteNotification = &openapi.Operation{
		ID:         "deleteNotification",
		Summary:    "Delete notification",
		Tags:       []string{tagNotifications},
		Method:     http.MethodDelete,
		Path:       "/notification/{id}",
		PathParams: []openapi.Param{pathParam("id")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyNone,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusNoContent:    noContent(),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opDeleteNotifications = &openapi.Operation{
		ID:          "deleteNotifications",
		Summary:     "Delete multiple notifications",
		Tags:        []string{tagNotifications},
		Method:      http.MethodDelete,
		Path:        "/notifications",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyNone,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusNoContent:    noContent(),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}
)

var (
	opGetUser = &openapi.Operation{
		ID:         "getUser",
		Summary:    "Get a user",
		Tags:       []string{tagUsers},
		Method:     http.MethodGet,
		Path:       "/user/{id|username}",
		PathParams: []openapi.Param{pathParam("id|username")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[User](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetUserFromAuth = &openapi.Operation{
		ID:      "getUserFromAuth",
		Summary: "Get user from authorization header",
		Tags:    []string{tagUsers},
		Method:  http.MethodGet,
		Path:    "/user",
		Accept:  jsonOnly,
		Returns: openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[User](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetUsers = &openapi.Operation{
		ID:          "getUsers",
		Summary:     "Get multiple users",
		Tags:        []string{tagUsers},
		Method:      http.MethodGet,
		Path:        "/users",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]User](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opModifyUser = &openapi.Operation{
		ID:           "modifyUser",
		Summary:      "Modify a user",
		Tags:         []string{tagUsers},
		Method:       http.MethodPatch,
		Path:         "/user/{id|username}",
		PathParams:   []openapi.Param{pathParam("id|username")},
		Accept:       jsonOnly,
		ContentTypes: jsonOnly,
		Body:         EditableUser{},
		Returns:      openapi.BodyNone,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusNoContent:    noContent(),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}
)

var (
	opGetProject = &openapi.Operation{
		ID:         "getProject",
		Summary:    "Get a project",
		Tags:       []string{tagProjects},
		Method:     http.MethodGet,
		Path:       "/project/{id|slug}",
		PathParams: []openapi.Param{pathParam("id|slug")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[Project](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetProjects = &openapi.Operation{
		ID:          "getProjects",
		Summary:     "Get multiple projects",
		Tags:        []string{tagProjects},
		Method:      http.MethodGet,
		Path:        "/projects",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]Project](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetUserProjects = &openapi.Operation{
		ID:         "getUserProjects",
		Summary:    "Get user's projects",
		Tags:       []string{tagProjects},
		Method:     http.MethodGet,
		Path:       "/user/{id|username}/projects",
		PathParams: []openapi.Param{pathParam("id|username")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]Project](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}
)

var (
	opGetVersion = &openapi.Operation{
		ID:         "getVersion",
		Summary:    "Get a version",
		Tags:       []string{tagVersions},
		Method:     http.MethodGet,
		Path:       "/version/{id}",
		PathParams: []openapi.Param{pathParam("id")},
		Accept:     jsonOnly,
		Returns:    openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[Version](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opGetVersions = &openapi.Operation{
		ID:          "getVersions",
		Summary:     "Get multiple versions",
		Tags:        []string{tagVersions},
		Method:      http.MethodGet,
		Path:        "/versions",
		QueryParams: []openapi.Param{idsParam()},
		Accept:      jsonOnly,
		Returns:     openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[[]Version](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}

	opCreateVersion = &openapi.Operation{
		ID:      "createVersion",
		Summary: "Create a version",
		Tags:    []string{tagVersions},
		Method:  http.MethodPost,
		Path:    "/version",
		FormParams: []openapi.Param{
			{Name: "data", Required: true, Schema: CreatableVersion{}},
			{Name: "file", Schema: []openapi.File{}},
		},
		Accept:       jsonOnly,
		ContentTypes: []string{openapi.ContentTypeMultipart},
		Returns:      openapi.BodyJSON,
		Responses: map[int]openapi.ResponseSpec{
			http.StatusOK:           jsonResponse[Version](),
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: AuthHeader,
	}
)

// Operations returns every operation the client can call, in a stable order
func Operations() []*openapi.Operation {
	return []*openapi.Operation{
		opGetNotification,
		opGetNotifications,
		opGetUserNotifications,
		opReadNotification,
		opReadNotifications,
		opDeleteNotification,
		opDeleteNotifications,
		opGetUser,
		opGetUserFromAuth,
		opGetUsers,
		opModifyUser,
		opGetProject,
		opGetProjects,
		opGetUserProjects,
		opGetVersion,
		opGetVersions,
		opCreateVersion,
	}
}
