package device

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(s string) Prompter {
	return PrompterFunc(func(string) (string, error) { return s, nil })
}

func TestFilePhotoPicker_CopiesIntoPhotoDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Respondent.JPG")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o644))
	dataDir := t.TempDir()

	ref, err := NewFilePhotoPicker(answer(src), dataDir).PickImage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataDir, "photos"), filepath.Dir(ref))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	b, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(b))
}

func TestFilePhotoPicker_EmptyAnswerCancels(t *testing.T) {
	_, err := NewFilePhotoPicker(answer(""), t.TempDir()).PickImage(context.Background())
	require.ErrorIs(t, err, ErrCancelled)
}

func TestFilePhotoPicker_RejectsNonImages(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	_, err := NewFilePhotoPicker(answer(src), t.TempDir()).PickImage(context.Background())
	require.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestFilePhotoPicker_MissingFile(t *testing.T) {
	_, err := NewFilePhotoPicker(answer(filepath.Join(t.TempDir(), "gone.png")), t.TempDir()).PickImage(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConsoleNotifier_Alert(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleNotifier(&buf).Alert(context.Background(), "Your data has been saved successfully.")
	assert.Equal(t, "[!] Your data has been saved successfully.\n", buf.String())
}
