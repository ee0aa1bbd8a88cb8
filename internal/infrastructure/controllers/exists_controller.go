package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// ExistsController handles the "exists" subcommand.
type ExistsController struct {
	command commands.Exists
}

// NewExistsController creates a new ExistsController.
func NewExistsController(command commands.Exists) *ExistsController {
	return &ExistsController{command: command}
}

// GetBind returns the Cobra command metadata for the exists controller.
func (it *ExistsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "exists <path>",
		Short: "Check whether a path exists",
		Long:  `Print "true" when something exists at the path and "false" otherwise.`,
		Args:  cobra.ExactArgs(1),
	}
}

func (it *ExistsController) AddFlags(_ *cobra.Command) {}

// Execute prints the existence answer.
func (it *ExistsController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	exists, err := it.command.Execute(cmd.Context(), settings, args[0])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), exists)
	return nil
}
