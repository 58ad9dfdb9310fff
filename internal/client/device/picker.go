package device

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/rockside/internal/filex"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".heic": {},
	".webp": {},
}

// FilePhotoPicker asks for a path to an image and copies the file into the
// client's photo directory under a random name, so the stored reference
// survives the original being moved.
type FilePhotoPicker struct {
	prompter Prompter
	dataDir  string
}

func NewFilePhotoPicker(prompter Prompter, dataDir string) *FilePhotoPicker {
	return &FilePhotoPicker{prompter: prompter, dataDir: dataDir}
}

func (p *FilePhotoPicker) PickImage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := p.prompter.Ask("Path to a photo (empty line to cancel)")
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrCancelled
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("photo %s: %w", path, err)
	}

	dir, err := filex.EnsureSubDir(p.dataDir, "photos")
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dir, uuid.NewString()+ext)
	if err := filex.CopyFile(path, dst); err != nil {
		return "", err
	}
	return dst, nil
}
