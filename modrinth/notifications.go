package modrinth

import (
	"context"

	"github.com/s0up4200/modrinth-go/openapi"
)

// NotificationsService calls the notification endpoints. Every operation
// requires a token with the NOTIFICATION_READ or NOTIFICATION_WRITE scope.
type NotificationsService struct {
	client *Client
}

// GetNotification fetches a single notification
func (s *NotificationsService) GetNotification(ctx context.Context, id string) (*Notification, error) {
	return call[*Notification](ctx, s.client, opGetNotification, idParams("id", id))
}

func (s *NotificationsService) GetNotificationWithHTTPInfo(ctx context.Context, id string) (openapi.Result[*Notification], error) {
	return callWithHTTPInfo[*Notification](ctx, s.client, opGetNotification, idParams("id", id))
}

func (s *NotificationsService) GetNotificationAsync(ctx context.Context, id string) *openapi.Future[*Notification] {
	return callAsync[*Notification](ctx, s.client, opGetNotification, idParams("id", id))
}

// GetNotifications fetches several notifications in one request
func (s *NotificationsService) GetNotifications(ctx context.Context, ids []string) ([]Notification, error) {
	return call[[]Notification](ctx, s.client, opGetNotifications, idsParams(ids))
}

func (s *NotificationsService) GetNotificationsWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[[]Notification], error) {
	return callWithHTTPInfo[[]Notification](ctx, s.client, opGetNotifications, idsParams(ids))
}

func (s *NotificationsService) GetNotificationsAsync(ctx context.Context, ids []string) *openapi.Future[[]Notification] {
	return callAsync[[]Notification](ctx, s.client, opGetNotifications, idsParams(ids))
}

// GetUserNotifications lists the notifications of a user, by id or username
func (s *NotificationsService) GetUserNotifications(ctx context.Context, idOrUsername string) ([]Notification, error) {
	return call[[]Notification](ctx, s.client, opGetUserNotifications, idParams("id|username", idOrUsername))
}

func (s *NotificationsService) GetUserNotificationsWithHTTPInfo(ctx context.Context, idOrUsername string) (openapi.Result[[]Notification], error) {
	return callWithHTTPInfo[[]Notification](ctx, s.client, opGetUserNotifications, idParams("id|username", idOrUsername))
}

func (s *NotificationsService) GetUserNotificationsAsync(ctx context.Context, idOrUsername string) *openapi.Future[[]Notification] {
	return callAsync[[]Notification](ctx, s.client, opGetUserNotifications, idParams("id|username", idOrUsername))
}

// ReadNotification marks a notification as read
func (s *NotificationsService) ReadNotification(ctx context.Context, id string) error {
	_, err := call[openapi.NoContent](ctx, s.client, opReadNotification, idParams("id", id))
	return err
}

func (s *NotificationsService) ReadNotificationWithHTTPInfo(ctx context.Context, id string) (openapi.Result[openapi.NoContent], error) {
	return callWithHTTPInfo[openapi.NoContent](ctx, s.client, opReadNotification, idParams("id", id))
}

func (s *NotificationsService) ReadNotificationAsync(ctx context.Context, id string) *openapi.Future[openapi.NoContent] {
	return callAsync[openapi.NoContent](ctx, s.client, opReadNotification, idParams("id", id))
}

// ReadNotifications marks several notifications as read in one request
func (s *NotificationsService) ReadNotifications(ctx context.Context, ids []string) error {
	_, err := call[openapi.NoContent](ctx, s.client, opReadNotifications, idsParams(ids))
	return err
}

func (s *NotificationsService) ReadNotificationsWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[openapi.NoContent], error) {
	return callWithHTTPInfo[openapi.NoContent](ctx, s.client, opReadNotifications, idsParams(ids))
}

func (s *NotificationsService) ReadNotificationsAsync(ctx context.Context, ids []string) *openapi.Future[openapi.NoContent] {
	return callAsync[openapi.NoContent](ctx, s.client, opReadNotifications, idsParams(ids))
}

// DeleteNotification deletes a notification
func (s *NotificationsService) DeleteNotification(ctx context.Context, id string) error {
	_, err := call[openapi.NoContent](ctx, s.client, opDeleteNotification, idParams("id", id))
	return err
}

func (s *NotificationsService) DeleteNotificationWithHTTPInfo(ctx context.Context, id string) (openapi.Result[openapi.NoContent], error) {
	return callWithHTTPInfo[openapi.NoContent](ctx, s.client, opDeleteNotification, idParams("id", id))
}

func (s *NotificationsService) DeleteNotificationAsync(ctx context.Context, id string) *openapi.Future[openapi.NoContent] {
	return callAsync[openapi.NoContent](ctx, s.client, opDeleteNotification, idParams("id", id))
}

// DeleteNotifications deletes several notifications in one request
func (s *NotificationsService) DeleteNotifications(ctx context.Context, ids []string) error {
	_, err := call[openapi.NoContent](ctx, s.client, opDeleteNotifications, idsParams(ids))
	return err
}

func (s *NotificationsService) DeleteNotificationsWithHTTPInfo(ctx context.Context, ids []string) (openapi.Result[openapi.NoContent], error) {
	return callWithHTTPInfo[openapi.NoContent](ctx, s.client, opDeleteNotifications, idsParams(ids))
}

func (s *NotificationsService) DeleteNotificationsAsync(ctx context.Context, ids []string) *openapi.Future[openapi.NoContent] {
	return callAsync[openapi.NoContent](ctx, s.client, opDeleteNotifications, idsParams(ids))
}
