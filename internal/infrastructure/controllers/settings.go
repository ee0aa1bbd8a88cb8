package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// loadSettings builds the effective settings from the persistent flags, the config
// file (explicit or auto-detected) and the environment.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	token, _ := cmd.Flags().GetString("token")
	owner, _ := cmd.Flags().GetString("owner")
	repository, _ := cmd.Flags().GetString("repo")
	branch, _ := cmd.Flags().GetString("branch")

	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		} else {
			logger.Debugf("No config file found, using flags and environment: %v", err)
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.LoadSettings(configPath, entities.SettingsOverrides{
		Token:      token,
		Owner:      owner,
		Repository: repository,
		Branch:     branch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}
