package books

import (
	"context"
	"time"

	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/mediafile"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Service struct {
	docs *docstore.Documents
	now  func() time.Time
}

func NewService(docs *docstore.Documents) *Service {
	return &Service{docs: docs, now: time.Now}
}

// CreateBookOptions holds the fields for adding a book to the library. Name
// and Author fall back to placeholder values when empty.
type CreateBookOptions struct {
	Name          string
	Author        string
	FileLocation  string
	CoverImage    *string
	TotalPages    int
	FileFormat    string
	FileSizeBytes int64
	Metadata      *models.Metadata
}

// CreateBook validates the options, fills defaults, and appends the new book
// to the library document.
func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	if opts.TotalPages <= 0 {
		return nil, errcodes.ValidationError(`"total_pages" must be greater than 0`)
	}
	if opts.FileLocation == "" {
		return nil, errcodes.ValidationError(`"file_location" is required`)
	}
	if opts.FileFormat != models.FileFormatPDF && opts.FileFormat != models.FileFormatEPUB {
		return nil, errcodes.ValidationError(`"file_format" must be one of the following: "pdf", "epub"`)
	}

	name := opts.Name
	if name == "" {
		name = models.DefaultBookName
	}
	author := opts.Author
	if author == "" {
		author = models.DefaultBookAuthor
	}
	metadata := models.DefaultMetadata()
	if opts.Metadata != nil {
		metadata = *opts.Metadata
	}

	book := &models.Book{
		ID:            uuid.NewString(),
		Name:          name,
		Author:        author,
		FileLocation:  opts.FileLocation,
		CoverImage:    opts.CoverImage,
		TotalPages:    opts.TotalPages,
		AddedDate:     svc.now(),
		FileFormat:    opts.FileFormat,
		FileSizeBytes: opts.FileSizeBytes,
		Progress: models.Progress{
			CurrentPage: 0,
			Percentage:  "0.00",
		},
		Bookmarks: []models.Bookmark{},
		Metadata:  metadata,
	}

	library := svc.docs.Books.Get(ctx)
	library.Books = append(library.Books, book)
	if err := svc.docs.Books.Set(ctx, library); err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ImportBookOptions holds the fields for importing a book from a file on
// disk. Format, size, and page count come from the file itself.
type ImportBookOptions struct {
	FilePath string
	Name     string
	Author   string
	Metadata *models.Metadata
}

// ImportBook inspects the file to derive format, size, and page count, then
// creates the book. The display name defaults to the filename without its
// extension.
func (svc *Service) ImportBook(ctx context.Context, opts ImportBookOptions) (*models.Book, error) {
	if opts.FilePath == "" {
		return nil, errcodes.ValidationError(`"file_path" is required`)
	}

	info, err := mediafile.Inspect(opts.FilePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	name := opts.Name
	if name == "" {
		name = mediafile.NameFromPath(opts.FilePath)
	}

	return svc.CreateBook(ctx, CreateBookOptions{
		Name:          name,
		Author:        opts.Author,
		FileLocation:  opts.FilePath,
		TotalPages:    info.PageCount,
		FileFormat:    info.Format,
		FileSizeBytes: info.SizeBytes,
		Metadata:      opts.Metadata,
	})
}

// RetrieveBook returns the book with the given id.
func (svc *Service) RetrieveBook(ctx context.Context, id string) (*models.Book, error) {
	library := svc.docs.Books.Get(ctx)
	for _, book := range library.Books {
		if book.ID == id {
			return book, nil
		}
	}
	return nil, errcodes.NotFound("Book")
}

// ListBooks returns all books in insertion order.
func (svc *Service) ListBooks(ctx context.Context) []*models.Book {
	return svc.docs.Books.Get(ctx).Books
}

// UpdateProgress moves the book's current page, recomputes the completion
// percentage, and stamps the last read date.
func (svc *Service) UpdateProgress(ctx context.Context, id string, currentPage int) (*models.Book, error) {
	if currentPage < 0 {
		return nil, errcodes.ValidationError(`"current_page" must be greater than or equal to 0`)
	}

	library := svc.docs.Books.Get(ctx)
	var book *models.Book
	for _, b := range library.Books {
		if b.ID == id {
			book = b
			break
		}
	}
	if book == nil {
		return nil, errcodes.NotFound("Book")
	}

	now := svc.now()
	book.Progress.CurrentPage = currentPage
	book.Progress.Percentage = models.FormatPercentage(currentPage, book.TotalPages)
	book.Progress.LastReadDate = &now

	if err := svc.docs.Books.Set(ctx, library); err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}
