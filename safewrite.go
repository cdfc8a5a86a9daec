package posy

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// SafeWrite noisily saves t to a file named after the seed and returns the name.
func (s Seed) SafeWrite(t Target, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(t, fname); err != nil {
		log.Error().Err(err).Str("file", fname).Msg("problem saving")
		return fname, err
	}
	log.Info().Str("file", fname).Msg("saved")
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(t Target, fname string) error {
	if err := MaybeCreateDir(filepath.Dir(fname)); err != nil {
		return err
	}

	// Next to the target so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(filepath.Dir(fname), ".posy.*"+filepath.Ext(fname))
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := t.WriteFile(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents if missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
