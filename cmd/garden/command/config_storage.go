package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/lo-maxwell/virtual-garden/internal/account"
	"github.com/lo-maxwell/virtual-garden/internal/storage"
)

type StorageConfig struct {
	Accounts AssetConfig[*account.Plain] `json:"accounts"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Accounts.Validate("accounts"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	// The store creates the directory itself; an existing path just
	// has to be a directory.
	if fi, err := os.Stat(c.Path); err == nil && !fi.IsDir() {
		return fmt.Errorf("%s: path %q is not a directory", name, c.Path)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
