package mediafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectPDFFallsBackOnPageCount(t *testing.T) {
	t.Parallel()

	// A PDF header without a page table. Detection succeeds; counting falls
	// back.
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0644))

	info, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, models.FileFormatPDF, info.Format)
	assert.Equal(t, fallbackPageCount, info.PageCount)
	assert.Equal(t, int64(9), info.SizeBytes)
}

func TestInspectUnsupportedType(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := Inspect(path)
	require.ErrorIs(t, err, errcodes.UnsupportedMediaType())
}

func TestInspectMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Inspect(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func TestNameFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dune", NameFromPath("/books/Dune.pdf"))
	assert.Equal(t, "The Left Hand of Darkness", NameFromPath("The Left Hand of Darkness.epub"))
	assert.Equal(t, "README", NameFromPath("docs/README"))
}
