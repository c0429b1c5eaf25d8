package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/cli/config"
	"github.com/steviee/mdget/internal/cli/loaders"
	"github.com/steviee/mdget/internal/cli/mods"
	"github.com/steviee/mdget/internal/cli/versions"
	"github.com/steviee/mdget/internal/minecraft"
	"github.com/steviee/mdget/internal/ui"
)

// ConnectivityMessage is printed when the startup connectivity probe fails.
const ConnectivityMessage = "Failed to connect to the internet! Make sure you're connected"

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	a := app.New()
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "mdget",
		Short: "Download Minecraft mods from Modrinth",
		Long: `mdget downloads Minecraft mods from Modrinth for one game version and mod loader.

For every mod it also fetches the direct dependencies that support the same
game version, picks the newest file matching the configured version and loader,
checks its SHA-512 digest and writes it to the current directory.

The target version and loader are stored in ~/.config/mdget/config.toml.`,
		Example: `  # Show the target Minecraft version
  mdget version

  # Target Minecraft 1.20.1 with Quilt
  mdget version set 1.20.1
  mdget loader set quilt

  # Download mods and their dependencies
  mdget mod sodium lithium

  # Find a mod
  mdget search shaders`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(v.GetString("output"))
			if err != nil {
				return err
			}

			ui.SetupLogging(cmd.ErrOrStderr(), ui.LogOptions{
				Verbose: v.GetBool("verbose"),
				Quiet:   v.GetBool("quiet"),
				JSON:    format == ui.FormatJSON,
			})

			if !needsSession(cmd) {
				return nil
			}

			settings, err := app.LoadSettings()
			if err != nil {
				return err
			}
			if settings.UserAgent == "" {
				settings.UserAgent = app.UserAgent(version)
			}

			return a.Open(cmd.Context(), app.Options{
				ConfigPath: v.GetString("config"),
				Settings:   settings,
				Output:     format,
			})
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close(cmd.Context())
		},
	}

	rootCmd.SetVersionTemplate(versionTemplate(BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		BuiltBy: builtBy,
	}))

	// Add global flags
	rootCmd.PersistentFlags().String("config", "", "preference file (default: ~/.config/mdget/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", string(ui.FormatText), "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// MDGET_OUTPUT, MDGET_VERBOSE, ... mirror the flags
	v.SetEnvPrefix("MDGET")
	v.AutomaticEnv()
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versions.NewCommand(a))
	rootCmd.AddCommand(loaders.NewCommand(a))
	rootCmd.AddCommand(mods.NewModCommand(a))
	rootCmd.AddCommand(mods.NewSearchCommand(a))
	rootCmd.AddCommand(config.NewCommand(a))

	return rootCmd
}

// needsSession reports whether cmd talks to the network and the preference
// file. Help and shell completion work offline.
func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// ErrorMessage returns the text shown to the user for an error returned by
// the root command.
func ErrorMessage(err error) string {
	if errors.Is(err, minecraft.ErrConnectivity) {
		return ConnectivityMessage
	}
	return fmt.Sprintf("Error: %v", err)
}
