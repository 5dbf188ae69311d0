package models

import (
	"strconv"
	"time"
)

const (
	FileFormatPDF  = "pdf"
	FileFormatEPUB = "epub"
)

// Defaults applied when a book is created without display fields.
const (
	DefaultBookName   = "Untitled Book"
	DefaultBookAuthor = "Unknown Author"
)

type Book struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Author        string     `json:"author"`
	FileLocation  string     `json:"file_location"`
	CoverImage    *string    `json:"cover_image"`
	TotalPages    int        `json:"total_pages"`
	AddedDate     time.Time  `json:"added_date"`
	FileFormat    string     `json:"file_format"`
	FileSizeBytes int64      `json:"file_size"`
	Progress      Progress   `json:"progress"`
	Bookmarks     []Bookmark `json:"bookmarks"`
	Metadata      Metadata   `json:"metadata"`
}

// Progress is the per-book reading position. Percentage is never set
// independently; it is recomputed from CurrentPage and TotalPages on every
// update.
type Progress struct {
	CurrentPage  int        `json:"current_page"`
	Percentage   string     `json:"percentage"`
	LastReadDate *time.Time `json:"last_read_date"`
}

type Bookmark struct {
	Page      int       `json:"page"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type Metadata struct {
	Language        string   `json:"language"`
	Publisher       string   `json:"publisher"`
	PublicationDate string   `json:"publication_date"`
	ISBN            string   `json:"isbn"`
	Categories      []string `json:"categories"`
}

// DefaultMetadata returns the metadata block for books added without one.
func DefaultMetadata() Metadata {
	return Metadata{
		Language:   "en",
		Categories: []string{},
	}
}

// FormatPercentage renders a progress percentage the way the documents store
// it: two decimal places. A book with no pages reads as 0% rather than
// dividing by zero.
func FormatPercentage(currentPage, totalPages int) string {
	if totalPages <= 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(currentPage)/float64(totalPages)*100, 'f', 2, 64)
}

// Library is the shape of the Books document.
type Library struct {
	Books []*Book `json:"books"`
}
