package modrinth

import (
	"context"
)

// NotificationsAPI defines the notification operations
type NotificationsAPI interface {
	GetNotification(ctx context.Context, id string) (*Notification, error)
	GetNotifications(ctx context.Context, ids []string) ([]Notification, error)
	GetUserNotifications(ctx context.Context, idOrUsername string) ([]Notification, error)
	ReadNotification(ctx context.Context, id string) error
	ReadNotifications(ctx context.Context, ids []string) error
	DeleteNotification(ctx context.Context, id string) error
	DeleteNotifications(ctx context.Context, ids []string) error

	// MarkAllRead and DeleteAll chunk large id lists over several requests
	MarkAllRead(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context, ids []string) error
}

// UsersAPI defines the user operations
type UsersAPI interface {
	GetUser(ctx context.Context, idOrUsername string) (*User, error)
	GetUserFromAuth(ctx context.Context) (*User, error)
	GetUsers(ctx context.Context, ids []string) ([]User, error)
	ModifyUser(ctx context.Context, idOrUsername string, changes EditableUser) error
}

// ProjectsAPI defines the project operations
type ProjectsAPI interface {
	GetProject(ctx context.Context, idOrSlug string) (*Project, error)
	GetProjects(ctx context.Context, ids []string) ([]Project, error)
	GetProjectsBatched(ctx context.Context, ids []string) ([]Project, error)
	GetUserProjects(ctx context.Context, idOrUsername string) ([]Project, error)
}

var (
	_ NotificationsAPI = (*NotificationsService)(nil)
	_ UsersAPI         = (*UsersService)(nil)
	_ ProjectsAPI      = (*ProjectsService)(nil)
)
