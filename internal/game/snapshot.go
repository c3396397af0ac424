package game

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/quad-path-mover/internal/render"
)

func (s *Stage) exportSnapshot() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("quadpath.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return s.SavePNG(filename)
}

// SavePNG renders the stage at the configured size into a PNG file.
func (s *Stage) SavePNG(path string) error {
	dc := gg.NewContext(s.cfg.Width, s.cfg.Height)
	defer dc.Close()

	r := render.NewRaster(dc)
	s.Render(r)
	if err := r.Err(); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	log.Printf("[Stage] Snapshot saved to %s", path)
	return nil
}
