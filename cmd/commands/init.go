package commands

import (
	"github.com/quickfind/quickfind-terminal/pkg/examples"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// InitProject creates the project directory with default settings and the
// demo catalog, replacing any existing files
func InitProject() error {
	if err := files.InitProjectStructure(); err != nil {
		return err
	}
	if err := files.WriteSettings(models.DefaultSettings()); err != nil {
		return err
	}
	return files.WriteCatalog(examples.DefaultCatalog())
}
