package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// RemoveController handles the "rm" subcommand.
type RemoveController struct {
	command commands.Remove
}

// NewRemoveController creates a new RemoveController.
func NewRemoveController(command commands.Remove) *RemoveController {
	return &RemoveController{command: command}
}

// GetBind returns the Cobra command metadata for the remove controller.
func (it *RemoveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rm <path>",
		Short: "Delete a file",
		Long: `Delete a file from the configured repository in a single commit.
Without --sha the current SHA is looked up first.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the remove-specific flags to the given Cobra command.
func (it *RemoveController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Commit message (required)")
	cmd.Flags().String("sha", "", "Expected current SHA of the file")
	_ = cmd.MarkFlagRequired("message")
}

// Execute deletes the file.
func (it *RemoveController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	message, _ := cmd.Flags().GetString("message")
	sha, _ := cmd.Flags().GetString("sha")

	if err = it.command.Execute(cmd.Context(), settings, entities.FileChange{
		Path:         args[0],
		Message:      message,
		ExpectedHash: sha,
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
