package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repofiles",
		Short: "File operations on a GitHub repository",
		Long: `Read, create, update and delete single files in one GitHub repository
through the REST contents API. Every write is one commit.

The repository is taken from the config file (repofiles.yaml) or from
--owner/--repo. The token comes from --token, the config file, or the
GITHUB_TOKEN / GH_TOKEN environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"Auth token (inline, ${ENV_VAR} or file path)")
	cmd.PersistentFlags().String("owner", "",
		"Repository owner (user or organization)")
	cmd.PersistentFlags().String("repo", "",
		"Repository name")
	cmd.PersistentFlags().String("branch", "",
		"Branch to read and write (default: repository default branch)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Inject controllers via DIG
	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	err := cobraRoot.ExecuteContext(ctx)
	stop()
	if err != nil {
		var cfgErr *entities.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Fatalf("Cannot build the repository client: %s", err)
		}
		logger.Fatalf("Error executing 'repofiles': %s", err)
	}
}
