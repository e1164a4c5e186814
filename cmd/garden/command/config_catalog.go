package command

import (
	"fmt"
	"os"

	"github.com/lo-maxwell/virtual-garden/internal/item"
)

type CatalogConfig struct {
	Path string `json:"path"`
}

func (c *CatalogConfig) validate() error {
	if c.Path == "" {
		return fmt.Errorf("catalog: path is required")
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("catalog: invalid path %q: %w", c.Path, err)
	}
	return nil
}

func (c *CatalogConfig) buildCatalog() (*item.Catalog, error) {
	return item.LoadCatalog(c.Path)
}
