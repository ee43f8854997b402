package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/checks"
	"github.com/opsgrid/checks/internal/config"
	"github.com/opsgrid/checks/internal/nagios"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/opsgrid/checks/cmd.Version=..."
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "checks",
	Short: "Nagios plugin checks for host-based monitoring",
	Long: `Checks are Nagios plugins: each queries one endpoint, prints one
summary line, and exits 0 (OK), 1 (WARNING), 2 (CRITICAL), or 3 (UNKNOWN).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

const checkGroupID = "checks"

// Execute runs the CLI. Any error that escapes a subcommand, including
// a missing required flag, surfaces as UNKNOWN with a one-line
// diagnostic on stdout for the monitoring host.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: checkGroupID, Title: "Checks:"})
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Increase diagnostic verbosity")
	rootCmd.PersistentFlags().String("config", "", "Optional YAML config file")
	rootCmd.Flags().Bool("version", false, "Print version and exit")
	rootCmd.Flags().Bool("describe", false, "Output built-in check descriptions as JSON array")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		// Logs go to stderr: stdout is reserved for the one summary line.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("checks version %s\n", Version)
			return
		}
		if describe, _ := cmd.Flags().GetBool("describe"); describe {
			json.NewEncoder(os.Stdout).Encode(checks.GetAllDescriptions())
			return
		}
		cmd.Help()
	}
}

func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fail(err)
	}
	return cfg
}

// finish prints the verdict and exits with its status code.
func finish(v *check.Verdict) {
	fmt.Println(v.Message)
	os.Exit(v.Status.ExitCode())
}

// fail maps any error - transport, parse, or usage - uniformly to
// UNKNOWN. No partial credit, no retry.
func fail(err error) {
	fmt.Printf("Error: %s\n", err)
	os.Exit(nagios.StatusUnknown.ExitCode())
}
