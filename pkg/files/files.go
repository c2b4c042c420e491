package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

const (
	ProjectDir   = ".quickfind"
	SettingsFile = "settings.yaml"
	CatalogFile  = "catalog.yaml"
	LogsDir      = "logs"
)

// ErrNoCatalog is returned when the project has no catalog file yet
var ErrNoCatalog = errors.New("no catalog file found")

func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// SettingsPath returns the settings file location
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// CatalogPath returns the catalog file location
func CatalogPath() string {
	return filepath.Join(ProjectDir, CatalogFile)
}

// ReadSettings loads settings.yaml. A missing file yields the defaults, and
// keys absent from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := writeAtomic(SettingsPath(), content); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ReadCatalog loads catalog.yaml. A missing file yields an empty catalog.
func ReadCatalog() ([]models.ResultItem, error) {
	items, err := LoadCatalog(CatalogPath())
	if errors.Is(err, ErrNoCatalog) {
		return []models.ResultItem{}, nil
	}
	return items, err
}

// LoadCatalog reads and decodes a catalog file at any path
func LoadCatalog(path string) ([]models.ResultItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoCatalog, path)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var doc models.CatalogFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML %s: %w", path, err)
	}

	items, err := doc.Decode()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return items, nil
}

func WriteCatalog(items []models.ResultItem) error {
	doc := models.CatalogFile{Items: make([]models.CatalogEntry, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, models.EntryFor(item))
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to YAML: %w", err)
	}

	if err := writeAtomic(CatalogPath(), content); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}

// writeAtomic writes through a temp file and renames it into place
func writeAtomic(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return nil
}
