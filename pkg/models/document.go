package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Document is a row in the sqlite document backend: one named JSON document
// per row.
type Document struct {
	bun.BaseModel `bun:"table:documents,alias:d"`

	Name      string    `bun:",pk" json:"name"`
	Data      []byte    `bun:",notnull" json:"data"`
	UpdatedAt time.Time `bun:",notnull" json:"updated_at"`
}
