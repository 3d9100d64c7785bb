package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundtrack/runcheck/internal/adapters/outbound/schemaloader"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/tui"
	"github.com/groundtrack/runcheck/internal/domain"
)

func newSchemaCmd() *cobra.Command {
	var (
		jsonOut    bool
		schemaPath string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the schema a run configuration is validated against",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := domain.DSWxHLSSchema()
			if schemaPath != "" {
				loaded, err := schemaloader.New().Load(schemaPath)
				if err != nil {
					return err
				}
				schema = loaded
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(schema)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSchema(schema))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the schema as JSON")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "External schema file to print instead of the built-in one")

	return cmd
}
