package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	m := NewManager(nil)

	require.NoError(t, m.RegisterAll(map[string]string{
		"unread":  `not Read`,
		"invites": `Type == "team_invite"`,
	}))
	assert.Equal(t, []string{"invites", "unread"}, m.Names())

	f, ok := m.Get("unread")
	require.True(t, ok)
	assert.Equal(t, "not Read", f.Expression())

	err := m.RegisterAll(map[string]string{
		"stale":  `daysSince(Created) > 90`,
		"broken": `Year > 2000`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	_, ok = m.Get("stale")
	assert.False(t, ok, "nothing is registered when one filter fails")

	require.NoError(t, m.Register("stale", `daysSince(Created) > 90`))
	_, ok = m.Get("stale")
	assert.True(t, ok)
}

func TestManager_Resolve(t *testing.T) {
	m := NewManager(NewCompiler())
	require.NoError(t, m.Register("unread", `not Read`))

	f, err := m.Resolve("unread", `Read`)
	require.NoError(t, err)
	assert.Equal(t, "not Read", f.Expression())

	f, err = m.Resolve("", `Read`)
	require.NoError(t, err)
	assert.Equal(t, "Read", f.Expression())

	f, err = m.Resolve("", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = m.Resolve("missing", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
