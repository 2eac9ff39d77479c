package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/modrinth-go/filter"
	"github.com/s0up4200/modrinth-go/modrinth"
)

var (
	notifUser   string
	filterExpr  string
	filterName  string
	unreadOnly  bool
	readAll     bool
	deleteAll   bool
	skipConfirm bool
)

// notificationsCmd groups the notification commands
var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif", "n"},
	Short:   "Manage notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Long: `List the notifications of a user, optionally narrowed by a filter.

Filter examples:
  # Unread project updates
  modrinth notifications list --filter 'Type == "project_update" and !Read'

  # Anything older than a month
  modrinth notifications list --filter 'daysSince(Created) > 30'

  # Using a preset from the config file
  modrinth notifications list --preset stale`,
	PreRunE: initializeApp,
	RunE:    runNotificationsList,
}

var notificationsGetCmd = &cobra.Command{
	Use:     "get <id>...",
	Short:   "Show one or more notifications",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runNotificationsGet,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [id...]",
	Short: "Mark notifications as read",
	Long: `Mark notifications as read. With --all every notification of the user
that matches the filter is marked.`,
	PreRunE: initializeApp,
	RunE:    runNotificationsRead,
}

var notificationsDeleteCmd = &cobra.Command{
	Use:   "delete [id...]",
	Short: "Delete notifications",
	Long: `Delete notifications. With --all every notification of the user that
matches the filter is deleted. You are asked to confirm unless --yes is set.`,
	PreRunE: initializeApp,
	RunE:    runNotificationsDelete,
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsListCmd, notificationsGetCmd, notificationsReadCmd, notificationsDeleteCmd)

	for _, c := range []*cobra.Command{notificationsListCmd, notificationsReadCmd, notificationsDeleteCmd} {
		c.Flags().StringVarP(&notifUser, "user", "u", "", "user ID or username (default is the authenticated user)")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&filterName, "preset", "p", "", "named filter from the config file")
		c.MarkFlagsMutuallyExclusive("filter", "preset")
	}

	notificationsListCmd.Flags().BoolVar(&unreadOnly, "unread", false, "only show unread notifications")
	notificationsReadCmd.Flags().BoolVar(&readAll, "all", false, "mark every matching notification")
	notificationsDeleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete every matching notification")
	notificationsDeleteCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")
}

func runNotificationsList(cmd *cobra.Command, args []string) error {
	notifications, err := matchingNotifications(cmd)
	if err != nil {
		return err
	}

	if unreadOnly {
		unread := notifications[:0]
		for _, n := range notifications {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		notifications = unread
	}

	if jsonOut {
		return printJSON(os.Stdout, notifications)
	}

	if len(notifications) == 0 {
		fmt.Println("No notifications found")
		return nil
	}

	fmt.Printf("Found %d notifications:\n", len(notifications))
	printNotifications(os.Stdout, notifications)

	return nil
}

func runNotificationsGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var notifications []modrinth.Notification
	if len(args) == 1 {
		n, err := client.Notifications.GetNotification(ctx, args[0])
		if err != nil {
			return err
		}
		notifications = []modrinth.Notification{*n}
	} else {
		var err error
		notifications, err = client.Notifications.GetNotifications(ctx, args)
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(os.Stdout, notifications)
	}

	printNotifications(os.Stdout, notifications)
	return nil
}

func runNotificationsRead(cmd *cobra.Command, args []string) error {
	ids, err := targetIDs(cmd, args, readAll, func(n modrinth.Notification) bool { return !n.Read })
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		fmt.Println("No notifications to mark as read")
		return nil
	}

	ctx := cmd.Context()
	if len(ids) == 1 {
		err = client.Notifications.ReadNotification(ctx, ids[0])
	} else {
		err = client.Notifications.MarkAllRead(ctx, ids)
	}
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(ids)).Msg("Marked notifications as read")
	return nil
}

func runNotificationsDelete(cmd *cobra.Command, args []string) error {
	ids, err := targetIDs(cmd, args, deleteAll, nil)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		fmt.Println("No notifications to delete")
		return nil
	}

	if !skipConfirm {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("refusing to delete %d notifications without a terminal; use --yes", len(ids))
		}
		fmt.Printf("Delete %d notifications? [y/N]: ", len(ids))
		if !confirm(os.Stdin) {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	ctx := cmd.Context()
	if len(ids) == 1 {
		err = client.Notifications.DeleteNotification(ctx, ids[0])
	} else {
		err = client.Notifications.DeleteAll(ctx, ids)
	}
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(ids)).Msg("Deleted notifications")
	return nil
}

// targetIDs returns the explicit ids, or with all set the ids of every
// matching notification for which keep returns true
func targetIDs(cmd *cobra.Command, args []string, all bool, keep func(modrinth.Notification) bool) ([]string, error) {
	if all == (len(args) > 0) {
		return nil, fmt.Errorf("pass either notification IDs or --all")
	}

	if !all {
		return args, nil
	}

	notifications, err := matchingNotifications(cmd)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		if keep == nil || keep(n) {
			ids = append(ids, n.ID)
		}
	}

	return ids, nil
}

// matchingNotifications fetches the user's notifications and applies the
// selected filter
func matchingNotifications(cmd *cobra.Command) ([]modrinth.Notification, error) {
	ctx := cmd.Context()

	user := notifUser
	if user == "" {
		me, err := client.Users.GetUserFromAuth(ctx)
		if err != nil {
			return nil, err
		}
		user = me.ID
	}

	f, err := resolveFilter()
	if err != nil {
		return nil, err
	}

	notifications, err := client.Notifications.GetUserNotifications(ctx, user)
	if err != nil {
		return nil, err
	}

	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Int("total", len(notifications)).Msg("Applying filter")
	}

	return filter.Apply(f, notifications)
}

// resolveFilter picks the filter from the flags, falling back to the
// configured default preset
func resolveFilter() (*filter.Filter, error) {
	preset := filterName
	if preset == "" && filterExpr == "" {
		preset = cfg.Filter.Default
	}

	f, err := filters.Resolve(preset, filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	return f, nil
}

func printNotifications(w io.Writer, notifications []modrinth.Notification) {
	for _, n := range notifications {
		status := " "
		if !n.Read {
			status = "*"
		}

		fmt.Fprintf(w, "%s %s [%s] %s\n", status, n.ID, n.TypeName(), n.Title)
		if n.Text != "" {
			fmt.Fprintf(w, "    %s\n", n.Text)
		}
		fmt.Fprintf(w, "    Created: %s", n.Created.Format("2006-01-02 15:04"))
		if n.Link != "" {
			fmt.Fprintf(w, "  Link: %s", n.Link)
		}
		fmt.Fprintln(w)
	}
}

func confirm(r io.Reader) bool {
	var response string
	fmt.Fscanln(r, &response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
