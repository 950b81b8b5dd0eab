package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/accountgen/config"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Sampling.Seed = 21

	var out bytes.Buffer
	app, err := NewApp(cfg, nil, &out)
	require.NoError(t, err)
	return app, &out
}

func TestApp_Account(t *testing.T) {
	app, _ := newTestApp(t)

	a, err := app.Account("individual", "helicopter_mom_of_twins")
	require.NoError(t, err)
	stage, _ := a.Modifiers.Get("life_stage")
	assert.Equal(t, "parent", stage)

	a, err = app.Account("media_news", "")
	require.NoError(t, err)
	assert.Equal(t, "media_news", a.Type)
	assert.NotEmpty(t, a.Persona)

	a, err = app.Account("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, a.Type)
}

func TestApp_DrawSummary(t *testing.T) {
	app, _ := newTestApp(t)

	counts, err := app.DrawSummary()
	require.NoError(t, err)
	assert.Empty(t, counts)

	accounts, err := app.sampler.SampleAccounts(25)
	require.NoError(t, err)

	counts, err = app.DrawSummary()
	require.NoError(t, err)

	want := map[string]int{}
	for _, a := range accounts {
		want[a.Type]++
	}
	assert.Equal(t, want, counts)
}

func TestApp_Defaults(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, 75, app.postCount(0))
	assert.Equal(t, 5, app.postCount(5))
	assert.Equal(t, config.FormatText, app.format(""))
	assert.Equal(t, config.FormatJSON, app.format(config.FormatJSON))
}

// stubAccountIDs makes newAccountID return ids in order, repeating the last.
func stubAccountIDs(t *testing.T, ids ...string) {
	t.Helper()
	orig := newAccountID
	t.Cleanup(func() { newAccountID = orig })

	i := 0
	newAccountID = func() string {
		id := ids[min(i, len(ids)-1)]
		i++
		return id
	}
}

func TestWriteBatch_RedrawsTakenIDs(t *testing.T) {
	app, _ := newTestApp(t)
	dir := t.TempDir()

	existing := filepath.Join(dir, "acct-00000000.json")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0644))

	stubAccountIDs(t, "acct-00000000", "acct-11111111", "acct-11111111", "acct-22222222")

	accounts, err := app.sampler.SampleAccounts(2)
	require.NoError(t, err)
	manifest, err := app.WriteBatch(dir, accounts, 10)
	require.NoError(t, err)

	require.Len(t, manifest.Accounts, 2)
	assert.Equal(t, "acct-11111111", manifest.Accounts[0].ID)
	assert.Equal(t, "acct-22222222", manifest.Accounts[1].ID)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestWriteBatch_GivesUpOnRepeatedCollisions(t *testing.T) {
	app, _ := newTestApp(t)
	stubAccountIDs(t, "acct-deadbeef")

	accounts, err := app.sampler.SampleAccounts(2)
	require.NoError(t, err)
	_, err = app.WriteBatch(t.TempDir(), accounts, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collisions in a row")
}
