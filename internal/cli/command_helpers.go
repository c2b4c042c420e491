package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/internal/logging"
	"github.com/quickfind/quickfind-terminal/pkg/examples"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'quickfind init' first", files.ProjectDir)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadCatalog reads the project catalog, falling back to the built-in demo
// catalog when the project has none or it is empty
func (c *CommandContext) LoadCatalog() ([]models.ResultItem, error) {
	items, err := files.ReadCatalog()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return examples.DefaultCatalog(), nil
	}
	return items, nil
}

// ResolveItem finds one catalog item by name. An exact (case-insensitive)
// name or slug wins; otherwise the name must match exactly one item.
func ResolveItem(catalog []models.ResultItem, ref string) (models.ResultItem, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}

	for _, item := range catalog {
		name := models.NameOf(item)
		if strings.EqualFold(name, ref) || search.Slug(name) == strings.ToLower(ref) {
			return item, nil
		}
	}

	var matches []models.ResultItem
	for _, item := range catalog {
		if strings.Contains(strings.ToLower(models.NameOf(item)), strings.ToLower(ref)) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no item found matching '%s'", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, models.NameOf(m))
		}
		return nil, fmt.Errorf("multiple items match '%s': %s", ref, strings.Join(names, ", "))
	}
}

// FileLogger opens the project log file named in settings. Relative paths
// live under the project's logs directory.
func (c *CommandContext) FileLogger() (*zap.Logger, error) {
	cfg := c.LoadSettingsWithDefault().Log
	if cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(c.ProjectPath, files.LogsDir, cfg.File)
	}
	return logging.NewFileLogger(cfg)
}
