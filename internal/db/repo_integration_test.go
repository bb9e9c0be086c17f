//go:build integration

package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, TestTables); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestRepository_Ping_Integration(t *testing.T) {
	require.NoError(t, testRepo.Ping(context.Background()))
}

func TestRepository_Users_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("UnknownUsernameReturnsNil", func(t *testing.T) {
		user, err := repo.UserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("SeededUserHasNoPassword", func(t *testing.T) {
		user, err := repo.UserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.True(t, user.IsAdmin)
		assert.Nil(t, user.Password)
	})

	t.Run("SetUserPasswordPersistsHash", func(t *testing.T) {
		user, err := repo.UserByUsername(ctx, "editor")
		require.NoError(t, err)
		require.NotNil(t, user)

		require.NoError(t, repo.SetUserPassword(ctx, user.ID, "$2a$10$hash"))

		reloaded, err := repo.UserByUsername(ctx, "editor")
		require.NoError(t, err)
		require.NotNil(t, reloaded.Password)
		assert.Equal(t, "$2a$10$hash", *reloaded.Password)
		assert.False(t, reloaded.IsAdmin)
	})
}

func TestRepository_News_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("FirstPageStartsWithPinned", func(t *testing.T) {
		news, err := repo.News(ctx, 1, 6)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"News 05", "News 09", "News 01", "News 02", "News 03", "News 04"},
			newsTitles(news),
		)
	})

	t.Run("SecondPageReturnsItemsSevenToTwelve", func(t *testing.T) {
		news, err := repo.News(ctx, 2, 6)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"News 06", "News 07", "News 08", "News 10", "News 11", "News 12"},
			newsTitles(news),
		)
	})

	t.Run("PageBeyondEndIsEmpty", func(t *testing.T) {
		news, err := repo.News(ctx, 10, 6)
		require.NoError(t, err)
		assert.NotNil(t, news)
		assert.Empty(t, news)
	})

	t.Run("InvalidPaginationFails", func(t *testing.T) {
		_, err := repo.News(ctx, 0, 6)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be greater than 0")
	})

	t.Run("CountMatchesSeed", func(t *testing.T) {
		count, err := repo.NewsCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, TestNewsCount, count)
	})
}

func TestRepository_NewsByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("ExistingRow", func(t *testing.T) {
		news, err := repo.NewsByID(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, news)
		assert.Equal(t, "News 03", news.Title)
		require.NotNil(t, news.ExpiresAt)
		assert.True(t, news.ExpiresAt.Equal(BaseTime.Add(-24*time.Hour)))
	})

	t.Run("MissingRowReturnsNil", func(t *testing.T) {
		news, err := repo.NewsByID(ctx, 100000)
		require.NoError(t, err)
		assert.Nil(t, news)
	})
}

func TestRepository_NewsWrites_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("AddNewsAssignsIDAndCreatedAt", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		news := &News{
			Title:     "Fresh",
			Content:   "Body",
			Short:     "Short",
			ImagePath: "https://ucarecdn.com/fresh/",
		}
		require.NoError(t, repo.AddNews(ctx, news))
		assert.NotZero(t, news.ID)
		assert.True(t, news.CreatedAt.After(before), "created_at %v", news.CreatedAt)

		stored, err := repo.NewsByID(ctx, news.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Nil(t, stored.ExpiresAt)
		assert.False(t, stored.IsPinned)
	})

	t.Run("UpdateNewsTextKeepsImageAndPin", func(t *testing.T) {
		require.NoError(t, repo.UpdateNewsText(ctx, &News{
			ID:      5,
			Title:   "Renamed",
			Content: "New body",
			Short:   "New short",
		}))

		stored, err := repo.NewsByID(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Renamed", stored.Title)
		assert.Equal(t, "https://ucarecdn.com/05/", stored.ImagePath)
		assert.True(t, stored.IsPinned)
		assert.Nil(t, stored.ExpiresAt)
	})

	t.Run("UpdateNewsWritesAllColumns", func(t *testing.T) {
		expires := BaseTime.Add(48 * time.Hour)
		require.NoError(t, repo.UpdateNews(ctx, &News{
			ID:        6,
			Title:     "Edited",
			Content:   "Edited body",
			Short:     "Edited short",
			ImagePath: "https://ucarecdn.com/new/",
			ExpiresAt: &expires,
			IsPinned:  true,
		}))

		stored, err := repo.NewsByID(ctx, 6)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "https://ucarecdn.com/new/", stored.ImagePath)
		assert.True(t, stored.IsPinned)
		require.NotNil(t, stored.ExpiresAt)
		assert.True(t, stored.ExpiresAt.Equal(expires))
		assert.True(t, stored.CreatedAt.Equal(BaseTime.Add(-6*time.Hour)))
	})

	t.Run("DeleteNewsIsIdempotent", func(t *testing.T) {
		require.NoError(t, repo.DeleteNews(ctx, 7))
		require.NoError(t, repo.DeleteNews(ctx, 7))
		require.NoError(t, repo.DeleteNews(ctx, 100000))

		stored, err := repo.NewsByID(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestRepository_Schedule_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("SeededRows", func(t *testing.T) {
		rows, err := repo.Schedule(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("ReplaceWithNewRows", func(t *testing.T) {
		rows := []ScheduleRow{
			{Tuesday: strPtr("Zumba"), TuesdayTime: strPtr("19:00")},
			{Saturday: strPtr("Open gym")},
			{},
		}
		require.NoError(t, repo.ReplaceSchedule(ctx, rows))

		stored, err := repo.Schedule(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 3)

		var labels []string
		for _, r := range stored {
			if r.Tuesday != nil {
				labels = append(labels, *r.Tuesday)
			}
			if r.Saturday != nil {
				labels = append(labels, *r.Saturday)
				assert.Nil(t, r.SaturdayTime)
			}
		}
		assert.ElementsMatch(t, []string{"Zumba", "Open gym"}, labels)
	})

	t.Run("ReplaceWithNothingEmptiesTable", func(t *testing.T) {
		require.NoError(t, repo.ReplaceSchedule(ctx, nil))

		stored, err := repo.Schedule(ctx)
		require.NoError(t, err)
		assert.NotNil(t, stored)
		assert.Empty(t, stored)
	})
}

func TestRepository_ReplaceScheduleIsAtomic_Integration(t *testing.T) {
	ctx := context.Background()

	// Runs on the pool, not a test transaction, so the repository opens its own.
	before, err := testRepo.Schedule(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	_, err = testDB.ExecContext(ctx, `ALTER TABLE "raspored" ADD CONSTRAINT "raspored_no_fail" CHECK ("ponedjeljak" IS DISTINCT FROM 'fail')`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := testDB.ExecContext(ctx, `ALTER TABLE "raspored" DROP CONSTRAINT "raspored_no_fail"`)
		assert.NoError(t, err)
	})

	err = testRepo.ReplaceSchedule(ctx, []ScheduleRow{
		{Monday: strPtr("ok")},
		{Monday: strPtr("fail")},
	})
	require.Error(t, err)

	after, err := testRepo.Schedule(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}
