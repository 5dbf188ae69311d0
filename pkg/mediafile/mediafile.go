package mediafile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

const (
	// fallbackPageCount is used when a PDF's page table can't be parsed.
	fallbackPageCount = 100

	// epubBytesPerPage approximates a page for reflowable EPUBs, which have
	// no fixed page count.
	epubBytesPerPage = 2048
)

// Info describes an inspected book file.
type Info struct {
	Format    string
	SizeBytes int64
	PageCount int
}

// Inspect stats the file, sniffs its media type, and derives a page count.
// Only PDF and EPUB files are supported.
func Inspect(path string) (*Info, error) {
	log := logger.New()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	info := &Info{SizeBytes: stat.Size()}

	switch {
	case mtype.Is("application/pdf"):
		info.Format = models.FileFormatPDF
		pages, err := api.PageCountFile(path)
		if err != nil || pages <= 0 {
			// An unparseable page table shouldn't block the import.
			log.Err(err).Warn("could not count pdf pages", logger.Data{"path": path})
			pages = fallbackPageCount
		}
		info.PageCount = pages
	case mtype.Is("application/epub+zip"):
		info.Format = models.FileFormatEPUB
		pages := int(stat.Size() / epubBytesPerPage)
		if pages < 1 {
			pages = 1
		}
		info.PageCount = pages
	default:
		return nil, errcodes.UnsupportedMediaType()
	}

	return info, nil
}

// NameFromPath derives a display name from a file path by stripping the
// directory and extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
