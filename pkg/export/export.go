package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// WriteFiles renders the snapshot to <name>.svg and <name>.png in dir,
// concurrently. The first failure wins; the other file may still have
// been written.
func WriteFiles(dir, name string, snap Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return writeFile(filepath.Join(dir, name+".svg"), snap, WriteSVG)
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, name+".png"), snap, WritePNG)
	})
	return g.Wait()
}

func writeFile(path string, snap Snapshot, render func(w io.Writer, snap Snapshot) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f, snap); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
