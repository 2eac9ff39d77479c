package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/s0up4200/modrinth-go/modrinth"
)

// newEnv exposes a notification to filter expressions. Field names are the
// ones documented for the --filter flag.
func newEnv(n modrinth.Notification, now time.Time, funcs map[string]any) map[string]any {
	actions := make([]string, 0, len(n.Actions))
	for _, action := range n.Actions {
		actions = append(actions, action.Title)
	}

	env := make(map[string]any, 24+len(funcs))

	env["ID"] = n.ID
	env["UserID"] = n.UserID
	env["Type"] = n.TypeName()
	env["Title"] = n.Title
	env["Text"] = n.Text
	env["Link"] = n.Link
	env["Read"] = n.Read
	env["Created"] = n.Created
	env["Actions"] = actions

	addHelpers(env, now)

	env["hasAction"] = func(title string) bool {
		return slices.ContainsFunc(actions, func(a string) bool {
			return strings.EqualFold(a, title)
		})
	}

	for name, fn := range funcs {
		env[name] = fn
	}

	return env
}

func addHelpers(env map[string]any, now time.Time) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(now.Sub(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return now.AddDate(0, 0, -days)
	}
	env["hoursAgo"] = func(hours int) time.Time {
		return now.Add(-time.Duration(hours) * time.Hour)
	}

	// String helpers, case-insensitive. contains, startsWith and endsWith are
	// expr operators, so the helpers use other names.
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
}
