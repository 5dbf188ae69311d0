package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bookriapp/bookri/pkg/activity"
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/config"
	"github.com/bookriapp/bookri/pkg/database"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/bookriapp/bookri/pkg/mediafile"
	"github.com/bookriapp/bookri/pkg/stats"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	app := &cli.App{
		Name:        "bookridata",
		Usage:       "CLI to interact with the bookri data layer",
		Description: "CLI to interact with the bookri data layer",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create the document store with default documents",
				Action: func(c *cli.Context) error {
					docs, cleanup, err := openDocuments(c.Context, cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					docs.InitAll(c.Context)
					fmt.Printf("Initialized %s-backed documents\n", cfg.DocumentBackend)
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "print reading statistics",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "period",
						Value: stats.PeriodWeek,
						Usage: "aggregation period (day|week|month|year)",
					},
				},
				Action: func(c *cli.Context) error {
					docs, cleanup, err := openDocuments(c.Context, cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					bookService := books.NewService(docs)
					activityService := activity.NewService(docs, bookService, goals.NewService(docs))
					statsService := stats.NewService(bookService, activityService)

					periodStats, err := statsService.ReadingStats(c.Context, c.String("period"))
					if err != nil {
						return err
					}
					streak := statsService.ReadingStreak(c.Context)

					fmt.Printf("Period:        %s (%s to %s)\n", periodStats.Period, periodStats.StartDate, periodStats.EndDate)
					fmt.Printf("Pages read:    %d\n", periodStats.TotalPagesRead)
					fmt.Printf("Time spent:    %s\n", periodStats.TotalDurationSpent)
					fmt.Printf("Books read:    %d (%d completed)\n", periodStats.UniqueBooksRead, periodStats.BooksCompleted)
					fmt.Printf("Active days:   %d\n", periodStats.DaysWithActivity)
					fmt.Printf("Streak:        %d current, %d best\n", streak.CurrentStreak, streak.BestStreak)
					return nil
				},
			},
			{
				Name:      "inspect",
				Usage:     "inspect a book file",
				ArgsUsage: "<path/to/file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one file argument")
					}

					info, err := mediafile.Inspect(c.Args().First())
					if err != nil {
						return err
					}

					fmt.Printf("Format:     %s\n", info.Format)
					fmt.Printf("Size:       %d bytes\n", info.SizeBytes)
					fmt.Printf("Page count: %d\n", info.PageCount)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("command failed")
	}
}

func openDocuments(ctx context.Context, cfg *config.Config) (*docstore.Documents, func(), error) {
	if cfg.DocumentBackend == config.BackendSQLite {
		db, err := database.New(cfg)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		backend, err := docstore.NewSQLiteBackend(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, errors.WithStack(err)
		}
		return docstore.NewDocuments(backend), func() { _ = db.Close() }, nil
	}

	backend, err := docstore.NewFileBackend(cfg.DataDirectory)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	return docstore.NewDocuments(backend), func() {}, nil
}
