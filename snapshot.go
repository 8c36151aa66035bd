package modkeeper

import (
	"os"
	"path/filepath"

	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
)

// SnapshotPath returns the file the last successfully fetched catalog payload
// is written to.
func (c *client) SnapshotPath() string {
	return c.snapshotPath
}

// writeSnapshot persists the raw catalog payload, overwriting any previous
// snapshot. The file is write-only from the engine's point of view: it exists
// for external diagnostics and offline inspection and is never read back.
func (c *client) writeSnapshot(payload []byte) error {
	dir := filepath.Dir(c.snapshotPath)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(c.snapshotPath, payload, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", c.snapshotPath, err)
	}
	return nil
}
