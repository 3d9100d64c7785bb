package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundtrack/runcheck/internal/adapters/outbound/gitinfo"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/joblog"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/schemaloader"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/tui"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/yamlloader"
	"github.com/groundtrack/runcheck/internal/application"
	"github.com/groundtrack/runcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		strict     bool
		jsonOut    bool
		schemaPath string
		logPath    string
	)

	cmd := &cobra.Command{
		Use:   "validate <runconfig.yaml>",
		Short: "Validate a run configuration against its schema",
		Long:  "Check a run-configuration file against the built-in DSWx-HLS schema (or an external schema file) and report every violation found.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService(yamlloader.New(), schemaloader.New(), gitinfo.New())

			opts := application.Options{
				SchemaPath: schemaPath,
				Strict:     strict,
			}
			if logPath != "" {
				logger, err := joblog.New(logPath, domain.PGENameDSWxHLS)
				if err != nil {
					return err
				}
				defer logger.Close()
				opts.Logger = logger
			}

			report, err := svc.Validate(args[0], opts)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Valid() {
				return fmt.Errorf("validation failed: %d violation(s)", len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject keys not declared in the schema")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "External schema file (defaults to the built-in DSWx-HLS schema)")
	cmd.Flags().StringVar(&logPath, "log", "", "Append a machine-readable job log to this file")

	return cmd
}
