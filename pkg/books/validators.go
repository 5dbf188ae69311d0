package books

import "github.com/bookriapp/bookri/pkg/models"

// CreateBookPayload is the request body for adding a book.
type CreateBookPayload struct {
	Name         string           `json:"name,omitempty" validate:"omitempty,max=300"`
	Author       string           `json:"author,omitempty" validate:"omitempty,max=300"`
	FileLocation string           `json:"file_location" validate:"required"`
	CoverImage   *string          `json:"cover_image,omitempty"`
	TotalPages   int              `json:"total_pages" validate:"required,gt=0"`
	FileFormat   string           `json:"file_format" validate:"required,oneof=pdf epub"`
	FileSize     int64            `json:"file_size,omitempty" validate:"omitempty,gte=0"`
	Metadata     *models.Metadata `json:"metadata,omitempty"`
}

// ImportBookPayload is the request body for importing a book from a file on
// disk.
type ImportBookPayload struct {
	FilePath string           `json:"file_path" validate:"required"`
	Name     string           `json:"name,omitempty" validate:"omitempty,max=300"`
	Author   string           `json:"author,omitempty" validate:"omitempty,max=300"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
}
