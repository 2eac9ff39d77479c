package modrinth

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// chunk splits ids into consecutive slices of at most size elements
func chunk(ids []string, size int) [][]string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	return slices.Collect(slices.Chunk(ids, size))
}

// forEachChunk runs fn once per chunk of ids with bounded concurrency. The
// first error cancels the chunks still running and is returned.
func (c *Client) forEachChunk(ctx context.Context, ids []string, fn func(ctx context.Context, ids []string) error) error {
	if len(ids) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, ids := range chunk(ids, c.chunkSize) {
		g.Go(func() error {
			return fn(ctx, ids)
		})
	}

	return g.Wait()
}

// MarkAllRead marks every notification in ids as read, chunking large lists
// over several requests.
func (s *NotificationsService) MarkAllRead(ctx context.Context, ids []string) error {
	err := s.client.forEachChunk(ctx, ids, s.ReadNotifications)
	if err != nil {
		return err
	}

	s.client.logger.Debug().Int("count", len(ids)).Msg("Marked notifications as read")
	return nil
}

// DeleteAll deletes every notification in ids, chunking large lists over
// several requests.
func (s *NotificationsService) DeleteAll(ctx context.Context, ids []string) error {
	err := s.client.forEachChunk(ctx, ids, s.DeleteNotifications)
	if err != nil {
		return err
	}

	s.client.logger.Debug().Int("count", len(ids)).Msg("Deleted notifications")
	return nil
}

// GetProjectsBatched fetches any number of projects, chunking the ids over
// several requests. Results keep the order of the chunks, and within a chunk
// the order returned by the server.
func (s *ProjectsService) GetProjectsBatched(ctx context.Context, ids []string) ([]Project, error) {
	chunks := chunk(ids, s.client.chunkSize)
	results := make([][]Project, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.client.concurrency)

	for i, ids := range chunks {
		g.Go(func() error {
			projects, err := s.GetProjects(ctx, ids)
			if err != nil {
				return err
			}
			results[i] = projects
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

// GetNotificationsForUsers fetches the notifications of several users
// concurrently. Users whose request fails are logged and skipped.
func (s *NotificationsService) GetNotificationsForUsers(ctx context.Context, users []string) map[string][]Notification {
	result := make(map[string][]Notification, len(users))
	if len(users) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.client.concurrency)

	var mu sync.Mutex

	for _, user := range users {
		g.Go(func() error {
			notifications, err := s.GetUserNotifications(ctx, user)
			if err != nil {
				s.client.logger.Warn().
					Err(err).
					Str("user", user).
					Msg("Failed to get user notifications")
				return nil
			}

			mu.Lock()
			result[user] = notifications
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return result
}
