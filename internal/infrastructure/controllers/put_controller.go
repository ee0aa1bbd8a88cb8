package controllers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

var errNoContent = errors.New("either --content or --file is required")

// PutController handles the "put" subcommand.
type PutController struct {
	command commands.Put
}

// NewPutController creates a new PutController.
func NewPutController(command commands.Put) *PutController {
	return &PutController{command: command}
}

// GetBind returns the Cobra command metadata for the put controller.
func (it *PutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "put <path>",
		Short: "Create or update a file",
		Long: `Write a file to the configured repository in a single commit.

A missing file is created. An existing file is updated using its current
SHA, or the one given with --sha, which makes the write fail if the file
changed in the meantime.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the put-specific flags to the given Cobra command.
func (it *PutController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Commit message (required)")
	cmd.Flags().String("content", "", "File content")
	cmd.Flags().StringP("file", "f", "", `Read the content from a local file ("-" for stdin)`)
	cmd.Flags().String("sha", "", "Expected current SHA of the file")
	_ = cmd.MarkFlagRequired("message")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

// Execute writes the file.
func (it *PutController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	content, err := readContent(cmd)
	if err != nil {
		return err
	}

	message, _ := cmd.Flags().GetString("message")
	sha, _ := cmd.Flags().GetString("sha")

	result, err := it.command.Execute(cmd.Context(), settings, entities.FileChange{
		Path:         args[0],
		Message:      message,
		Content:      content,
		ExpectedHash: sha,
	})
	if err != nil {
		return err
	}

	action := "updated"
	if result.Created {
		action = "created"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", action, result.Path)
	return nil
}

func readContent(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		return []byte(content), nil
	}

	file, _ := cmd.Flags().GetString("file")
	switch file {
	case "":
		return nil, errNoContent
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read content from stdin: %w", err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file %q: %w", file, err)
		}
		return data, nil
	}
}
