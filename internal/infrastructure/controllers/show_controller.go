package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// ShowController handles the "cat" subcommand.
type ShowController struct {
	command commands.Show
}

// NewShowController creates a new ShowController.
func NewShowController(command commands.Show) *ShowController {
	return &ShowController{command: command}
}

// GetBind returns the Cobra command metadata for the show controller.
func (it *ShowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cat <path>",
		Short: "Print the content of a file",
		Long: `Print the content of a file. With --sha only the current blob SHA is
printed, which is the value update and delete expect.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the show-specific flags to the given Cobra command.
func (it *ShowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("sha", false, "Print the blob SHA instead of the content")
}

// Execute prints the file.
func (it *ShowController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(cmd.Context(), settings, args[0])
	if err != nil {
		return err
	}

	onlySHA, _ := cmd.Flags().GetBool("sha")
	if onlySHA {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.SHA)
		return nil
	}

	logger.Debugf("%s is at %s", result.Path, result.SHA)
	_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Content)
	return nil
}
