package goals

import (
	"context"
	"testing"

	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocuments(t *testing.T) *docstore.Documents {
	t.Helper()
	backend, err := docstore.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	docs := docstore.NewDocuments(backend)
	docs.InitAll(context.Background())
	return docs
}

func ptrInt(i int) *int { return &i }

func ptrDuration(d duration.Duration) *duration.Duration { return &d }

func TestGoalsDefaults(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	goals := svc.Goals(ctx)
	assert.Equal(t, 20, goals.Daily.Pages)
	assert.Equal(t, "30M", goals.Daily.Duration.String())
	assert.Equal(t, 140, goals.Weekly.Pages)
	assert.Equal(t, "3.5H", goals.Weekly.Duration.String())
	assert.Equal(t, 1, goals.Weekly.Books)
	assert.True(t, goals.Notifications.Enabled)
	assert.Equal(t, "19:00", goals.Notifications.ReminderTime)
}

func TestUpdateDailyGoalsMergesOnlyDaily(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	goals, err := svc.UpdateDailyGoals(ctx, DailyGoalsOptions{Pages: ptrInt(40)})
	require.NoError(t, err)

	assert.Equal(t, 40, goals.Daily.Pages)
	// Omitted field keeps its value.
	assert.Equal(t, "30M", goals.Daily.Duration.String())
	// Sibling sub-objects are untouched.
	assert.Equal(t, 140, goals.Weekly.Pages)
	assert.Equal(t, "19:00", goals.Notifications.ReminderTime)

	// Persisted.
	fresh := NewService(docs)
	assert.Equal(t, 40, fresh.Goals(ctx).Daily.Pages)
}

func TestUpdateWeeklyGoals(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	goals, err := svc.UpdateWeeklyGoals(ctx, WeeklyGoalsOptions{
		Duration: ptrDuration(duration.FromMinutes(300)),
		Books:    ptrInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "5.0H", goals.Weekly.Duration.String())
	assert.Equal(t, 2, goals.Weekly.Books)
	assert.Equal(t, 140, goals.Weekly.Pages)
	assert.Equal(t, 20, goals.Daily.Pages)
}

func TestUpdateNotifications(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	enabled := false
	reminder := "08:30"
	goals, err := svc.UpdateNotifications(ctx, NotificationOptions{
		Enabled:      &enabled,
		ReminderTime: &reminder,
	})
	require.NoError(t, err)
	assert.False(t, goals.Notifications.Enabled)
	assert.Equal(t, "08:30", goals.Notifications.ReminderTime)
}

func TestUpdateValidation(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	_, err := svc.UpdateDailyGoals(ctx, DailyGoalsOptions{Pages: ptrInt(0)})
	require.EqualError(t, err, `"pages" must be greater than 0`)

	_, err = svc.UpdateWeeklyGoals(ctx, WeeklyGoalsOptions{Books: ptrInt(-1)})
	require.EqualError(t, err, `"books" must be greater than 0`)

	bad := "7pm"
	_, err = svc.UpdateNotifications(ctx, NotificationOptions{ReminderTime: &bad})
	require.EqualError(t, err, `"reminder_time" should be in the format of HH:MM`)

	// Failed updates leave the document unchanged.
	assert.Equal(t, 20, svc.Goals(ctx).Daily.Pages)
	assert.Equal(t, "19:00", svc.Goals(ctx).Notifications.ReminderTime)
}

func TestCheckDailyAchievement(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	// Defaults: 20 pages, 30 minutes.
	achievement := svc.CheckDailyAchievement(ctx, 25, duration.FromMinutes(35))
	assert.True(t, achievement.DailyPages)
	assert.True(t, achievement.DailyDuration)
	assert.True(t, achievement.Overall)

	achievement = svc.CheckDailyAchievement(ctx, 25, duration.FromMinutes(10))
	assert.True(t, achievement.DailyPages)
	assert.False(t, achievement.DailyDuration)
	assert.False(t, achievement.Overall)

	achievement = svc.CheckDailyAchievement(ctx, 0, 0)
	assert.False(t, achievement.Overall)

	// Exact thresholds count.
	achievement = svc.CheckDailyAchievement(ctx, 20, duration.FromMinutes(30))
	assert.True(t, achievement.Overall)
}

func TestCheckWeeklyAchievement(t *testing.T) {
	t.Parallel()
	docs := setupDocuments(t)
	ctx := context.Background()
	svc := NewService(docs)

	// Defaults: 140 pages, 210 minutes, 1 book.
	achievement := svc.CheckWeeklyAchievement(ctx, 150, duration.FromMinutes(220), 1)
	assert.True(t, achievement.Overall)

	achievement = svc.CheckWeeklyAchievement(ctx, 150, duration.FromMinutes(220), 0)
	assert.True(t, achievement.WeeklyPages)
	assert.True(t, achievement.WeeklyDuration)
	assert.False(t, achievement.WeeklyBooks)
	assert.False(t, achievement.Overall)
}
