package mods

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/testutil"
	"github.com/steviee/mdget/internal/ui"
	"github.com/stretchr/testify/require"
)

func openApp(t *testing.T, b *testutil.Backend, format ui.Format) *app.App {
	t.Helper()

	a := app.New()
	require.NoError(t, a.Open(context.Background(), app.Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		Settings: app.Settings{
			APIURL:      b.URL,
			ManifestURL: b.ManifestURL(),
			Timeout:     time.Second,
		},
		Output: format,
	}))
	return a
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}
