package dal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ContentCache keeps one immutable file per calendar date under dir.
// File names are produced by formatting the date with a time layout, e.g. "kaenguru_2006-01-02.webp".
type ContentCache struct {
	dir    string
	layout string
}

func NewContentCache(dir, layout string) (*ContentCache, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	if err := validateLayout(layout); err != nil {
		return nil, err
	}

	return &ContentCache{
		dir:    dir,
		layout: layout,
	}, nil
}

// Path returns the file the content of d is cached in
func (c *ContentCache) Path(d Date) string {
	return filepath.Join(c.dir, d.Time(time.UTC).Format(c.layout))
}

func (c *ContentCache) GetContent(d Date) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(d))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read content for %s: %w", d.ToKey(), err)
	}
	return data, true, nil
}

// PutContent writes data to a temporary file and renames it into place,
// so readers never observe a partially written entry.
func (c *ContentCache) PutContent(d Date, data []byte) error {
	f, err := os.CreateTemp(c.dir, ".content-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", d.ToKey(), err)
	}
	tmp := f.Name()

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write content for %s: %w", d.ToKey(), err)
	}

	if err := os.Rename(tmp, c.Path(d)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename content for %s: %w", d.ToKey(), err)
	}
	return nil
}

// validateLayout makes sure distinct dates never share a file name
func validateLayout(layout string) error {
	if layout == "" || filepath.Base(layout) != layout {
		return fmt.Errorf("invalid content file layout %q", layout)
	}

	base := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC) //nolint:mnd // reference date
	name := base.Format(layout)
	for _, other := range []time.Time{base.AddDate(0, 0, 1), base.AddDate(0, 1, 0), base.AddDate(1, 0, 0)} {
		if other.Format(layout) == name {
			return fmt.Errorf("content file layout %q must contain year, month and day", layout)
		}
	}
	return nil
}
