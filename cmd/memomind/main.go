package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kokistudios/memomind/internal/bundle"
	"github.com/kokistudios/memomind/internal/command"
	"github.com/kokistudios/memomind/internal/i18n"
	memomcp "github.com/kokistudios/memomind/internal/mcp"
	"github.com/kokistudios/memomind/internal/shell"
	"github.com/kokistudios/memomind/internal/store"
	"github.com/kokistudios/memomind/internal/ui"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// homeFlag overrides store.Home when set.
var homeFlag string

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func main() {
	var noColor, verbose bool

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "memomind",
		Short: "MemoMind, a console assistant for contacts and notes",
		Long:  "An interactive assistant that keeps an address book and a note pad with hash tags. Run without arguments to start the shell.",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Init(noColor)
			ui.SetVerbose(verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			return shell.Run(cmd.Context(), env, shell.NewConsole(cmd.Context()))
		},
	}

	rootCmd.Version = buildVersion()
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "MemoMind home directory (default: $MEMOMIND_HOME or ~/.memomind)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "data", Title: "Data Commands:"},
		&cobra.Group{ID: "config", Title: "Configuration:"},
	)

	initC := initCmd()
	initC.GroupID = "core"
	execC := execCmd()
	execC.GroupID = "core"
	doctorC := doctorCmd()
	doctorC.GroupID = "core"

	exportC := exportCmd()
	exportC.GroupID = "data"
	importC := importCmd()
	importC.GroupID = "data"

	configC := configCmd()
	configC.GroupID = "config"

	rootCmd.AddCommand(initC, execC, doctorC, exportC, importC, configC)
	rootCmd.AddCommand(completionCmd())
	rootCmd.AddCommand(mcpServeCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func homeDir() string {
	if homeFlag != "" {
		return homeFlag
	}
	return store.Home()
}

// loadStore opens the home directory, creating it on first use.
func loadStore() (*store.Store, error) {
	home := homeDir()
	if !store.Exists(home) {
		ui.Logger.Debug("initializing home", "path", home)
		if err := store.Init(home, false); err != nil {
			return nil, err
		}
	}
	s, err := store.Load(home)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s (try 'memomind doctor'): %w", home, err)
	}
	return s, nil
}

func loadEnv() (*command.Env, error) {
	s, err := loadStore()
	if err != nil {
		return nil, err
	}
	book, pad, err := s.LoadData()
	if err != nil {
		return nil, fmt.Errorf("%w (run 'memomind doctor --fix' to move the file aside)", err)
	}
	ui.Logger.Debug("data loaded", "contacts", book.Len(), "notes", pad.Len(), "language", s.Config.Language)
	return &command.Env{
		Book:  book,
		Pad:   pad,
		Tr:    i18n.New(s.Config.Locale()),
		Store: s,
		Now:   time.Now,
	}, nil
}

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the MemoMind home directory",
		Long:    "Create the MemoMind home directory (~/.memomind by default) with config.yaml and empty contacts and notes files. The shell does this on first start as well.",
		Example: "  memomind init\n  memomind init --force",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := homeDir()
			if err := store.Init(home, force); err != nil {
				return err
			}
			ui.Success("MemoMind initialized")
			ui.KeyValue("Home:", home)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite config.yaml even if the home already exists (data files are kept)")
	return cmd
}

func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Run one shell command and save",
		Long:  "Run a single shell command without entering the interactive shell. Follow-up questions are read from stdin. Both data files are saved afterwards.",
		Example: `  memomind exec add contact "Ann Lee" 0671112233
  memomind exec congrat 7
  memomind exec -- search note "#work"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			console := shell.NewPlain(cmd.Context(), os.Stdin, os.Stdout)
			return shell.Exec(env, console, shellquote.Join(args...))
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and edit MemoMind configuration",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configSetCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(s.Config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a MemoMind configuration value. Valid keys: " + fmt.Sprint(store.ConfigKeys) + ".",
		Example: `  memomind config set language ukr
  memomind config set page 10
  memomind config set files.notes ~/Dropbox/notes.json`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: store.ConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			if err := s.SetConfigValue(args[0], args[1]); err != nil {
				return err
			}
			ui.Success(fmt.Sprintf("Set %s = %s", args[0], args[1]))
			return nil
		},
	}
}

func doctorCmd() *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check health of the MemoMind home and data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := homeDir()

			if fix {
				ui.SectionHeader("DOCTOR · repair mode")
				fixed := store.FixIssues(home)
				for _, f := range fixed {
					ui.Success(fmt.Sprintf("[FIXED] %s", f))
				}
				if len(fixed) == 0 {
					ui.EmptyState("Nothing to fix.")
				}
			} else {
				ui.SectionHeader("DOCTOR · health check")
			}

			issues := store.CheckHealth(home)
			if len(issues) == 0 {
				ui.Success("Everything looks good")
				return nil
			}

			hasError := false
			for _, issue := range issues {
				if issue.Severity == "error" {
					ui.Error(fmt.Sprintf("[ERR]  %s", issue.Message))
					hasError = true
				} else {
					ui.Warning(fmt.Sprintf("[WARN] %s", issue.Message))
				}
			}

			if hasError {
				os.Exit(2)
			}
			os.Exit(1)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "Recreate a missing home or config and move unreadable data files aside")
	return cmd
}

func completionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish]",
		Short:     "Generate shell completion scripts",
		Long:      "Generate shell completion scripts for bash, zsh, or fish. Output the script to stdout for sourcing in your shell profile.",
		Example:   "  memomind completion bash > ~/.bashrc.d/memomind\n  memomind completion zsh > ~/.zfunc/_memomind\n  memomind completion fish > ~/.config/fish/completions/memomind.fish",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			default:
				return fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", args[0])
			}
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export contacts and notes to a portable " + bundle.Ext + " bundle",
		Long: `Export the whole address book and note pad to one gzipped tar bundle.

Without a path the bundle is written to the current directory as
memomind-<date>-<time>.memomind. A directory path gets the same default name.`,
		Example: `  memomind export
  memomind export ~/Desktop/backup.memomind`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			var outPath string
			if len(args) == 1 {
				outPath = args[0]
			}

			written, err := bundle.Export(env.Store.Config, env.Book, env.Pad, outPath, time.Now())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			ui.Logger.Debug("bundle written", "path", written, "contacts", env.Book.Len(), "notes", env.Pad.Len())

			sizeStr := ""
			if info, err := os.Stat(written); err == nil {
				sizeStr = fmt.Sprintf(" (%d bytes)", info.Size())
			}
			ui.Success(fmt.Sprintf("Exported %d contacts and %d notes to %s%s", env.Book.Len(), env.Pad.Len(), written, sizeStr))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "import <bundle-path>",
		Short: "Merge contacts and notes from a " + bundle.Ext + " bundle",
		Long: `Merge a MemoMind bundle into your data.

Contacts whose name already exists and notes already present are kept
unchanged. Use --preview to see what the bundle holds without importing.`,
		Example: `  memomind import backup.memomind
  memomind import ~/Downloads/laptop.memomind --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundlePath := args[0]

			if preview {
				manifest, err := bundle.ReadManifest(bundlePath)
				if err != nil {
					return fmt.Errorf("failed to read bundle: %w", err)
				}
				ui.SectionHeader("IMPORT PREVIEW · " + bundlePath)
				ui.KeyValue("Bundle ID:   ", manifest.ID)
				ui.KeyValue("Exported at: ", manifest.ExportedAt.Format("2006-01-02 15:04:05"))
				ui.KeyValue("Language:    ", manifest.Language)
				ui.KeyValue("Contacts:    ", fmt.Sprintf("%d", manifest.Contacts))
				ui.KeyValue("Notes:       ", fmt.Sprintf("%d", manifest.Notes))
				ui.Info("Use 'memomind import' without --preview to merge this bundle.")
				return nil
			}

			env, err := loadEnv()
			if err != nil {
				return err
			}
			result, err := bundle.Import(bundlePath, env.Book, env.Pad)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			ui.Logger.Debug("bundle merged", "id", result.Manifest.ID, "contacts", result.ContactsAdded, "notes", result.NotesAdded)
			if err := env.Store.SaveData(env.Book, env.Pad); err != nil {
				return err
			}

			ui.Success(fmt.Sprintf("Imported bundle %s", result.Manifest.ID))
			ui.KeyValue("Contacts added: ", fmt.Sprintf("%d", result.ContactsAdded))
			ui.KeyValue("Notes added:    ", fmt.Sprintf("%d", result.NotesAdded))
			if result.NotesSkipped > 0 {
				ui.KeyValue("Notes skipped:  ", fmt.Sprintf("%d", result.NotesSkipped))
			}
			if len(result.ContactsSkipped) > 0 {
				ui.SectionHeader("Skipped Contacts")
				ui.Warning("These names already exist and were left unchanged:")
				rows := make([][]string, len(result.ContactsSkipped))
				for i, name := range result.ContactsSkipped {
					rows[i] = []string{name}
				}
				ui.Table([]string{"NAME"}, rows)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "Preview bundle contents without importing")
	return cmd
}

func mcpServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mcp-serve",
		Short:  "Run MemoMind as an MCP server",
		Long:   "Start MemoMind as a Model Context Protocol (MCP) server over stdio, exposing contact search, upcoming birthdays and note tools to MCP clients.",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			ui.Logger.Debug("mcp server starting", "home", env.Store.Home)
			server := memomcp.NewServer(env.Store, env.Book, env.Pad, version)
			return server.Run(cmd.Context())
		},
	}
}
