package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pageprint/internal/version"
	"github.com/arthur-debert/pageprint/pkg/config"
	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/arthur-debert/pageprint/pkg/logging"
	"github.com/arthur-debert/pageprint/pkg/page"
	"github.com/arthur-debert/pageprint/pkg/render"
	"github.com/arthur-debert/pageprint/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:     "pageprint [page-file|-]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(gf.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, gf, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&gf.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&gf.configPath, "config", "", MsgFlagConfig)

	// Output flags override the configuration only when given
	rootCmd.Flags().BoolP("raw", "r", false, MsgFlagRaw)
	rootCmd.Flags().BoolP("compact", "c", false, MsgFlagCompact)
	rootCmd.Flags().Bool("show-title", false, MsgFlagShowTitle)
	rootCmd.Flags().String("color", "auto", MsgFlagColor)
	rootCmd.Flags().String("theme", "", MsgFlagTheme)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(&gf))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// flagKeys maps output flags to configuration keys
var flagKeys = map[string]string{
	"raw":        "output.raw_markdown",
	"compact":    "output.compact",
	"show-title": "output.show_title",
	"color":      "output.color",
	"theme":      "style.theme",
}

// loadConfig loads the configuration with explicitly set flags laid on top
func loadConfig(cmd *cobra.Command, gf globalFlags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := cmd.Flags().GetBool(name)
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	}
	return config.Load(config.LoadOptions{Path: gf.configPath, Overrides: overrides})
}

func runRender(cmd *cobra.Command, gf globalFlags, args []string) error {
	logger := logging.GetLogger("cli.render")

	cfg, err := loadConfig(cmd, gf)
	if err != nil {
		return err
	}

	p, err := readPage(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if title, ok := p.Title(); ok {
		logger.Debug().Str("title", title).Msg("Loaded page")
	}

	out := cmd.OutOrStdout()
	table := style.Plain()
	if !cfg.Output.RawMarkdown {
		theme, err := cfg.Theme()
		if err != nil {
			return err
		}
		table, err = style.NewTable(out, cfg.ColorMode(), theme)
		if err != nil {
			return err
		}
	}

	logger.Info().
		Int("lines", p.Len()).
		Str("color", cfg.ColorMode().String()).
		Msg("Rendering page")
	return render.New(out, cfg.RenderOptions(), table).Render(p)
}

// readPage reads the page named by args, or stdin when there is none or it is "-"
func readPage(stdin io.Reader, args []string) (page.Page, error) {
	if len(args) == 0 || args[0] == "-" {
		return page.Load(stdin)
	}
	return page.LoadFile(args[0])
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newConfigCmd(gf *globalFlags) *cobra.Command {
	var showDefault bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showDefault {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := config.Load(config.LoadOptions{Path: gf.configPath})
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Wrap(err, errors.ErrOutputWrite, "failed to write configuration")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDefault, "default", false, MsgFlagDefault)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "failed to create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "PAGEPRINT",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
