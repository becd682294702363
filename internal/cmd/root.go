package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"palcfg/internal/config"
	"palcfg/internal/configservice"
	"palcfg/internal/labels"
	"palcfg/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Flag and environment values, bound before Execute()
	Viper      *viper.Viper
	JSONOutput bool
	Fs         afero.Fs
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		JSONOutput: app.JSON,
		Out:        app.Out,
		Err:        app.Err,
	}
}

func (p *AppProvider) viper() *viper.Viper {
	if p.Viper == nil {
		p.Viper = configservice.NewViper()
	}
	return p.Viper
}

func (p *AppProvider) jsonOutput() bool {
	return p.JSONOutput || p.viper().GetBool(configservice.KeyJSON)
}

func (p *AppProvider) init() (*App, error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	settings, err := configservice.Resolve(p.viper(), fs)
	if err != nil {
		return nil, err
	}

	log := newLogger(errOut, settings)
	store, err := config.NewStoreForProfile(settings.Profile, config.WithFs(fs), config.WithLogger(log))
	if err != nil {
		return nil, err
	}
	store.Load(settings.Path)
	log.WithField("profile", settings.Profile.String()).Debugf("loaded %s", settings.Path)

	return &App{
		Store:     store,
		Settings:  settings,
		Fs:        fs,
		Labels:    labels.FromEnv(),
		Log:       log,
		Out:       out,
		Err:       errOut,
		JSON:      settings.JSON || p.JSONOutput,
		RunEditor: runEditor,
	}, nil
}

func runEditor(m tui.Model) (tui.Result, error) {
	return tui.Run(m, tea.WithAltScreen())
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Viper: configservice.NewViper(),
		Out:   os.Stdout,
		Err:   os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palcfg [platform version file]",
		Short: "Settings launcher for SDLPAL",
		Long: `palcfg edits the sdlpal.cfg settings file before the game starts.

Without a subcommand it opens the interactive editor. Choosing "launch" there
saves the settings and exits with status 11, which tells the wrapper script
to start the game. When LaunchSetting=0 is already in the file the editor is
skipped and palcfg exits with 11 straight away.

The three positional arguments are accepted for compatibility with existing
wrapper scripts and override --platform, --release and --file.`,
		Example: `  palcfg
  palcfg -p pyra -r git -f ~/.sdlpal
  palcfg pandora v2017 ./sdlpal.cfg`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected no arguments or exactly three (platform version file), got %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				v := provider.viper()
				v.Set(configservice.KeyPlatform, args[0])
				v.Set(configservice.KeyRelease, args[1])
				v.Set(configservice.KeyFile, args[2])
			}
			return runEdit(provider)
		},
	}

	// Global flags, resolved through viper so PALCFG_* variables apply too
	flags := rootCmd.PersistentFlags()
	flags.StringP(configservice.KeyFile, "f", configservice.DefaultFileName, "Settings file, or a directory holding "+configservice.DefaultFileName)
	flags.StringP(configservice.KeyPlatform, "p", string(config.PlatformPC), "Target platform: pc, pandora or pyra")
	flags.StringP(configservice.KeyRelease, "r", string(config.VersionGit), "Game release: classic, v2017 or git")
	flags.BoolVar(&provider.JSONOutput, configservice.KeyJSON, false, "Output in JSON format")
	flags.String(configservice.KeyLogLevel, configservice.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.Bool(configservice.KeyLogJSON, false, "Write log records as JSON")

	for _, name := range []string{
		configservice.KeyFile,
		configservice.KeyPlatform,
		configservice.KeyRelease,
		configservice.KeyJSON,
		configservice.KeyLogLevel,
		configservice.KeyLogJSON,
	} {
		lo.Must0(provider.viper().BindPFlag(name, flags.Lookup(name)))
	}

	lo.Must0(rootCmd.RegisterFlagCompletionFunc(configservice.KeyPlatform, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(config.Platforms(), func(p config.Platform, _ int) string { return string(p) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc(configservice.KeyRelease, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(config.Versions(), func(v config.Version, _ int) string { return string(v) }), cobra.ShellCompDirectiveNoFileComp
	}))

	// Register all commands
	rootCmd.AddCommand(newEditCmd(provider))
	rootCmd.AddCommand(newLaunchCmd(provider))
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newRestoreCmd(provider))
	rootCmd.AddCommand(newResetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newCheckCmd(provider))
	rootCmd.AddCommand(newExportCmd(provider))
	rootCmd.AddCommand(newProfilesCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
