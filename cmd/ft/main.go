package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ft-go/internal/app"
	"ft-go/internal/config"
	"ft-go/internal/ft"
	"ft-go/internal/prompt"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an FTApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "ChangeTimestamps", "Interactive").
func newApp(operation string) (*app.FTApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.LoadOrDefault(defaults["config_path"], defaults["log_dir"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewFTApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:          "ft",
	Short:        "Change file creation, access, and modification timestamps",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() == 0 && len(args) == 0 {
			return runInteractive()
		}
		return runFlagMode(cmd)
	},
}

// runFlagMode performs a single timestamp change described entirely by flags.
func runFlagMode(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("file")
	date, _ := cmd.Flags().GetString("date")
	source, _ := cmd.Flags().GetString("source")
	creation, _ := cmd.Flags().GetBool("creation")
	access, _ := cmd.Flags().GetBool("access")
	modified, _ := cmd.Flags().GetBool("modified")

	if file == "" {
		return errors.New("--file is required")
	}
	if date == "" && source == "" {
		return errors.New("one of --date or --source is required")
	}

	var src ft.TimeSource
	if date != "" {
		t, ok := ft.ParseDate(date)
		if !ok {
			return fmt.Errorf("could not parse date '%s' (accepted formats: %s)",
				date, strings.Join(ft.DateFormats, ", "))
		}
		src = ft.ExplicitInstant(t)
	} else {
		src = ft.CopyFrom(source)
	}

	a, err := newApp("ChangeTimestamps")
	if err != nil {
		return err
	}
	defer a.Close()

	req := &ft.Request{
		Target: file,
		Source: src,
		Fields: ft.Selection{Creation: creation, Access: access, Modified: modified},
	}

	written, err := a.ChangeTimestamps(req)
	if err != nil {
		return err
	}

	fmt.Println(ft.SuccessMessage(file, written, src, a.DisplayFormat()))
	return nil
}

// runInteractive drives the prompt loop until the operator is done.
func runInteractive() error {
	a, err := newApp("Interactive")
	if err != nil {
		return err
	}
	defer a.Close()

	session := prompt.NewSession(a, os.Stdin, os.Stdout, a.DisplayFormat())
	session.Banner = term.IsTerminal(int(os.Stdin.Fd()))
	return session.Run()
}

// show command
var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "View a file's timestamps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShowTimestamps")
		if err != nil {
			return err
		}
		defer a.Close()

		p, ts, err := a.ShowTimestamps(args[0])
		if err != nil {
			return err
		}

		format := a.DisplayFormat()
		fmt.Printf("File:     %s\n", p)
		fmt.Printf("Size:     %d\n", p.Info().Size())
		fmt.Printf("Created:  %s\n", ts.Creation.Format(format))
		fmt.Printf("Accessed: %s\n", ts.Access.Format(format))
		fmt.Printf("Modified: %s\n", ts.Modified.Format(format))
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Create config with defaults
		cfg := config.NewConfig(defaults["log_dir"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Log Dir: %s\n", defaults["log_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Read config, falling back to defaults when no file exists
		cfg, err := config.LoadOrDefault(defaults["config_path"], defaults["log_dir"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		// Display config
		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Log Dir:        %s\n", cfg.LogDir)
		fmt.Printf("Display Format: %s\n", cfg.DisplayFormat)
		return nil
	},
}

func init() {
	// root flags
	rootCmd.Flags().StringP("file", "f", "", "Path to the file to modify")
	rootCmd.Flags().StringP("date", "d", "", "New date/time, e.g. 'YYYY-MM-DD HH:MM:SS'")
	rootCmd.Flags().StringP("source", "s", "", "File to copy timestamps from")
	rootCmd.Flags().BoolP("creation", "c", false, "Change only the creation time")
	rootCmd.Flags().BoolP("access", "a", false, "Change only the access time")
	rootCmd.Flags().BoolP("modified", "m", false, "Change only the modification time")
	rootCmd.MarkFlagsMutuallyExclusive("date", "source")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}
