package cmd

import (
	"context"

	"github.com/opsgrid/checks/internal/checks/cloudendure"
	"github.com/opsgrid/checks/internal/checks/debug"
	"github.com/opsgrid/checks/internal/checks/jsonstatus"
	"github.com/spf13/cobra"
)

// json-url check
var jsonURLCmd = &cobra.Command{
	Use:   jsonstatus.Name,
	Short: "Check a URL returning a flat JSON object of health indicators",
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		okString, _ := cmd.Flags().GetString("ok-string")
		warnString, _ := cmd.Flags().GetString("warn-string")

		cfg := loadConfig(cmd)
		fetcher := jsonstatus.NewHTTPFetcher(cfg.HTTPTimeout)

		verdict, err := jsonstatus.Run(context.Background(), fetcher, url, okString, warnString)
		if err != nil {
			fail(err)
		}
		finish(verdict)
	},
}

// cloudendure check
var cloudEndureCmd = &cobra.Command{
	Use:   cloudendure.Name,
	Short: "Check the sync status of CloudEndure replication",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		hostname, _ := cmd.Flags().GetString("hostname")

		cfg := loadConfig(cmd)
		if username == "" {
			username = cfg.CloudEndure.Username
		}
		if password == "" {
			password = cfg.CloudEndure.Password
		}

		chk := &cloudendure.Check{
			Client:            cloudendure.NewClient(cfg.CloudEndure.URL, cfg.HTTPTimeout),
			WarningSyncDelay:  cfg.CloudEndure.WarningSyncDelay,
			CriticalSyncDelay: cfg.CloudEndure.CriticalSyncDelay,
		}

		verdict, err := chk.Run(context.Background(), username, password, hostname)
		if err != nil {
			fail(err)
		}
		finish(verdict)
	},
}

// debug check
var debugCmd = &cobra.Command{
	Use:   debug.Name,
	Short: "Debug check for testing status handling",
	Run: func(cmd *cobra.Command, args []string) {
		mode, _ := cmd.Flags().GetString("mode")
		message, _ := cmd.Flags().GetString("message")

		finish(debug.Run(mode, message))
	},
}

func init() {
	jsonURLCmd.GroupID = checkGroupID
	cloudEndureCmd.GroupID = checkGroupID
	debugCmd.GroupID = checkGroupID
	rootCmd.AddCommand(jsonURLCmd)
	rootCmd.AddCommand(cloudEndureCmd)
	rootCmd.AddCommand(debugCmd)

	// json-url flags
	jsonURLCmd.Flags().StringP("url", "u", "", "URL to be checked (required)")
	jsonURLCmd.Flags().StringP("ok-string", "p", "", "Text string which indicates OK (required)")
	jsonURLCmd.Flags().StringP("warn-string", "w", "", "Text string which indicates Warning")
	jsonURLCmd.MarkFlagRequired("url")
	jsonURLCmd.MarkFlagRequired("ok-string")

	// cloudendure flags
	cloudEndureCmd.Flags().StringP("username", "u", "", "User name for the CloudEndure account (or CLOUDENDURE_USERNAME)")
	cloudEndureCmd.Flags().StringP("password", "p", "", "Password for the CloudEndure account (or CLOUDENDURE_PASSWORD)")
	cloudEndureCmd.Flags().StringP("hostname", "n", "all", `Hostname of instance to check, or "all"`)

	// debug flags
	debugCmd.Flags().String("mode", "ok", "Status to report (ok, warning, critical, unknown)")
	debugCmd.Flags().String("message", "", "Custom message to return")
}
