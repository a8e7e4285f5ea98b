// Package storage persists uploaded poster images outside the database.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// PosterStore saves raster images for astronomy shows and returns the URL
// path they are served under.
type PosterStore interface {
	Save(showTitle string, payload []byte) (string, error)
}

type DiskPosterStore struct {
	rootDir string
}

func NewDiskPosterStore(rootDir string) *DiskPosterStore {
	return &DiskPosterStore{
		rootDir: rootDir,
	}
}

// Save sniffs the payload's real content type and rejects anything that is
// not a raster image. The file name combines the slugified show title with a
// random token so that shows with equal titles never collide.
func (s *DiskPosterStore) Save(showTitle string, payload []byte) (string, error) {
	mtype := mimetype.Detect(payload)
	if !strings.HasPrefix(mtype.String(), "image/") || mtype.Is("image/svg+xml") {
		return "", domain.ErrNotAnImage
	}

	name := fmt.Sprintf("%s-%s%s", slug.Make(showTitle), uuid.NewString(), mtype.Extension())
	dir := filepath.Join(s.rootDir, "uploads", "shows")

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(filepath.Join(dir, name), payload, 0o644)
	if err != nil {
		return "", err
	}

	return "/uploads/shows/" + name, nil
}
