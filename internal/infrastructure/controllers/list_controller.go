package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// ListController handles the "ls" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ls [path]",
		Short: "List the contents of a path",
		Long: `List the files and directories at a path of the configured repository.
Prints one line per entry: type, SHA and path. Without a path the
repository root is listed.`,
		Args: cobra.MaximumNArgs(1),
	}
}

func (it *ListController) AddFlags(_ *cobra.Command) {}

// Execute lists the requested path.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	items, err := it.command.Execute(cmd.Context(), settings, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, item := range items {
		_, _ = fmt.Fprintf(out, "%-9s %s %s\n", item.Type, item.SHA, item.Path)
	}
	return nil
}
