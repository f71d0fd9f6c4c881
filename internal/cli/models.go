package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage registered models",
	}

	cmd.AddCommand(newModelsListCommand())
	cmd.AddCommand(newModelsGetCommand())
	cmd.AddCommand(newModelsDeleteCommand())

	return cmd
}

func newModelsListCommand() *cobra.Command {
	var (
		search string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered models",
		Example: `  # List all models
  mrctl models list

  # Search by name fragment, as JSON
  mrctl models list --search churn -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := apiClient().ListModels(cmd.Context(), search, limit, offset)
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			return renderModelsTable(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter models by name fragment")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newModelsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one registered model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := apiClient().GetModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), model)
			}
			return renderModel(cmd.OutOrStdout(), model)
		},
	}
}

func newModelsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a registered model",
		Long: `Delete a registered model. The server refuses while any version
sits in Staging or Production.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().DeleteModel(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Model %q deleted\n", args[0])
			return nil
		},
	}
}
