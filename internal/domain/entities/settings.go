package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultProvider is used when the configuration does not name a provider.
const DefaultProvider = "github"

// Settings is the configuration for a single bound repository.
type Settings struct {
	Provider   string          `yaml:"provider"`   // only "github" is registered
	Token      string          `yaml:"token"`      // Inline, ${ENV_VAR}, or file path
	Owner      string          `yaml:"owner"`      // User or organization
	Repository string          `yaml:"repository"` // Repository name
	Branch     string          `yaml:"branch"`     // Empty means the default branch
	BaseURL    string          `yaml:"base_url"`   // GitHub Enterprise API URL
	Committer  CommitterConfig `yaml:"committer"`
}

// CommitterConfig sets the author of commits created by writes.
type CommitterConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// SettingsOverrides carries values given on the command line. Empty fields are ignored.
type SettingsOverrides struct {
	Token      string
	Owner      string
	Repository string
	Branch     string
}

// tokenEnvVars lists the environment variables checked for a token, in priority order.
var tokenEnvVars = []string{ //nolint:gochecknoglobals // fixed lookup order
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

// configFileNames are tried in order within every searched directory.
var configFileNames = []string{ //nolint:gochecknoglobals // fixed lookup order
	".repofiles.yaml",
	".repofiles.yml",
	"repofiles.yaml",
	"repofiles.yml",
}

// ErrConfigNotFound is returned by FindConfigFile when no directory holds a config file.
var ErrConfigNotFound = errors.New("no repofiles config file found")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment variables
// and resolving token file paths. It does not validate the result.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = ResolveToken(settings.Token)
	return &settings, nil
}

// LoadSettings builds the effective settings: the config file at path (skipped when
// path is empty), then CLI overrides, then environment fallbacks for the token.
func LoadSettings(path string, overrides SettingsOverrides) (*Settings, error) {
	settings := &Settings{}
	if path != "" {
		var err error
		settings, err = NewSettings(path)
		if err != nil {
			return nil, err
		}
	}

	settings.apply(overrides)
	if settings.Provider == "" {
		settings.Provider = DefaultProvider
	}
	if settings.Token == "" {
		settings.Token = tokenFromEnv()
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Reference returns the repository binding described by the settings.
func (s *Settings) Reference() RepositoryReference {
	return RepositoryReference{
		Owner:  s.Owner,
		Name:   s.Repository,
		Branch: s.Branch,
	}
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Provider == "" {
		return errors.New("provider is required")
	}
	if s.Token == "" {
		return fmt.Errorf(
			"token is required (set inline, via ${ENV_VAR}, as file path, or in %s)",
			strings.Join(tokenEnvVars, " / "),
		)
	}
	if s.Owner == "" {
		return errors.New("owner is required")
	}
	if s.Repository == "" {
		return errors.New("repository is required")
	}
	return nil
}

func (s *Settings) apply(overrides SettingsOverrides) {
	if overrides.Token != "" {
		s.Token = ResolveToken(overrides.Token)
	}
	if overrides.Owner != "" {
		s.Owner = overrides.Owner
	}
	if overrides.Repository != "" {
		s.Repository = overrides.Repository
	}
	if overrides.Branch != "" {
		s.Branch = overrides.Branch
	}
}

// FindConfigFile returns the first repofiles config file in configDirs, trying
// configFileNames in order within each directory.
func FindConfigFile() (string, error) {
	dirs := configDirs()
	for _, dir := range dirs {
		if found, ok := configFileIn(dir); ok {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w (searched %s)", ErrConfigNotFound, strings.Join(dirs, ", "))
}

// configDirs lists the working directory with its .config and configs
// subdirectories, then $HOME and $HOME/.config when a home directory is known.
func configDirs() []string {
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

func configFileIn(dir string) (string, bool) {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// ResolveToken expands ${VAR} references in raw. When the result names a regular
// file, the trimmed file content is the token instead.
func ResolveToken(raw string) string {
	token := expandTokenEnv(raw)
	if fromFile, ok := readTokenFile(token); ok {
		return fromFile
	}
	return token
}

func expandTokenEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		value := os.Getenv(name)
		if value == "" {
			logger.Warnf("Token references %q, which is not set", name)
		}
		return value
	})
}

func readTokenFile(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Cannot read token file %q, using the value as is: %v", path, err)
		return "", false
	}
	logger.Debugf("Read token from file %q", path)
	return strings.TrimSpace(string(data)), true
}

func tokenFromEnv() string {
	for _, name := range tokenEnvVars {
		if v := os.Getenv(name); v != "" {
			logger.Debugf("Using token from %s", name)
			return v
		}
	}
	return ""
}
