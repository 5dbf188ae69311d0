package docstore

import (
	"context"

	"github.com/bookriapp/bookri/pkg/models"
)

// Names of the three persisted documents.
const (
	DocumentBooks        = "bookri_books"
	DocumentGoals        = "bookri_goals"
	DocumentReadActivity = "bookri_read_data"
)

// Documents bundles the three persisted documents. It is constructed once at
// startup and passed by handle to every repository; InitAll runs before any
// repository method is reachable so methods never re-check for an empty
// cache.
type Documents struct {
	Books    *Document[*models.Library]
	Goals    *Document[*models.Goals]
	Activity *Document[[]*models.DailyActivity]
}

func NewDocuments(backend Backend) *Documents {
	return &Documents{
		Books: New(DocumentBooks, backend,
			func() *models.Library { return &models.Library{Books: []*models.Book{}} },
			func(l *models.Library) bool { return l != nil && l.Books != nil },
		),
		Goals: New(DocumentGoals, backend,
			models.DefaultGoals,
			func(g *models.Goals) bool { return g != nil },
		),
		Activity: New(DocumentReadActivity, backend,
			func() []*models.DailyActivity { return []*models.DailyActivity{} },
			func(a []*models.DailyActivity) bool { return a != nil },
		),
	}
}

// InitAll is the explicit startup sequence: it initializes all three
// documents up front.
func (d *Documents) InitAll(ctx context.Context) {
	d.Books.Init(ctx)
	d.Goals.Init(ctx)
	d.Activity.Init(ctx)
}
