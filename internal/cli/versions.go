package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Manage model versions",
	}

	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsGetCommand())
	cmd.AddCommand(newVersionsViewCommand())
	cmd.AddCommand(newVersionsTransitionCommand())
	cmd.AddCommand(newVersionsDeleteCommand())

	return cmd
}

func parseVersionArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid version %q: must be a positive integer", arg)
	}
	return n, nil
}

func newVersionsListCommand() *cobra.Command {
	var (
		stage  string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list <model>",
		Short: "List versions of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().ListVersions(cmd.Context(), args[0], stage, limit, offset)
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			return renderVersionsTable(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Filter by stage (None|Staging|Production|Archived)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newVersionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <model> <version>",
		Short: "Show one model version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseVersionArg(args[1])
			if err != nil {
				return err
			}

			version, err := apiClient().GetVersion(cmd.Context(), args[0], number)
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), version)
			}
			return renderVersion(cmd.OutOrStdout(), version)
		},
	}
}

func newVersionsViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <model> <version>",
		Short: "Render the version page for a model version",
		Long: `Render the version page the registry UI shows: title, stage menu,
run link and deletion policy.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseVersionArg(args[1])
			if err != nil {
				return err
			}

			view, err := apiClient().GetVersionView(cmd.Context(), args[0], number)
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), view)
			}
			return renderVersionView(cmd.OutOrStdout(), view)
		},
	}
}

func newVersionsTransitionCommand() *cobra.Command {
	var archiveExisting bool

	cmd := &cobra.Command{
		Use:   "transition <model> <version> <stage>",
		Short: "Move a model version to another stage",
		Example: `  # Promote to Production, archiving whatever holds the stage now
  mrctl versions transition churn-model 3 Production --archive-existing`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseVersionArg(args[1])
			if err != nil {
				return err
			}

			version, err := apiClient().TransitionStage(cmd.Context(), args[0], number, args[2], archiveExisting)
			if err != nil {
				return err
			}
			if outputFlag == "json" {
				return renderJSON(cmd.OutOrStdout(), version)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version %d of %q is now in %s\n", version.Version, version.ModelName, version.CurrentStage)
			return nil
		},
	}

	cmd.Flags().BoolVar(&archiveExisting, "archive-existing", false, "Archive versions already in the target stage")

	return cmd
}

func newVersionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <model> <version>",
		Short: "Delete a model version",
		Long: `Delete a model version. The server refuses while the version sits
in Staging or Production.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseVersionArg(args[1])
			if err != nil {
				return err
			}

			if err := apiClient().DeleteVersion(cmd.Context(), args[0], number); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version %d of %q deleted\n", number, args[0])
			return nil
		},
	}
}
