package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a disposable Postgres container. Skipped when no
// Docker daemon is reachable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, docker not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=boothvisit",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=secret dbname=boothvisit sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Discard,
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestDAOs_Postgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	boothDAO := NewBoothDAO(db)
	visitorDAO := NewVisitorDAO(db)
	visitDAO := NewVisitDAO(db)
	backupDAO := NewBackupDAO(db)

	number := "A1"
	booth, err := boothDAO.Insert(ctx, Booth{
		BoothNumber:      &number,
		BoothName:        "Robotics",
		Ministry:         "MOSTI",
		Agency:           "MIMOS",
		AbbreviationName: "RBT",
		Hashcode:         "aaaaaaaaaaaaaaaa",
	})
	require.NoError(t, err)

	visitor, err := visitorDAO.Insert(ctx, Visitor{
		Name:     "Aisyah",
		Email:    "aisyah@example.com",
		Gender:   "female",
		CookieID: "c0ffee",
	})
	require.NoError(t, err)

	t.Run("booth number conflict", func(t *testing.T) {
		_, err := boothDAO.Insert(ctx, Booth{
			BoothNumber:      &number,
			BoothName:        "Duplicate",
			Ministry:         "MOSTI",
			Agency:           "MIMOS",
			AbbreviationName: "DUP",
			Hashcode:         "cccccccccccccccc",
		})
		assert.ErrorIs(t, err, ErrBoothNumberExists)
	})

	t.Run("duplicate visit rejected by constraint", func(t *testing.T) {
		first, err := visitDAO.Insert(ctx, Visit{
			VisitorID: visitor.ID,
			BoothID:   booth.ID,
			VisitedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		_, err = visitDAO.Insert(ctx, Visit{
			VisitorID: visitor.ID,
			BoothID:   booth.ID,
			VisitedAt: time.Now().UTC(),
		})
		assert.ErrorIs(t, err, ErrVisitExists)

		count, err := visitDAO.CountByVisitorID(ctx, visitor.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		_, err = visitDAO.UpdateRating(ctx, first.ID, 4, nil)
		require.NoError(t, err)

		got, err := visitDAO.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Rating)
		assert.Equal(t, 4, *got.Rating)
		assert.Equal(t, "Aisyah", got.Visitor.Name)
	})

	t.Run("wipe and restore preserves timestamps", func(t *testing.T) {
		snapshot, err := backupDAO.SnapshotVisitors(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot, 1)
		original := snapshot[0]

		require.NoError(t, backupDAO.WipeAll(ctx))

		remaining, err := backupDAO.SnapshotVisits(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)

		original.ID = 0
		restored, err := backupDAO.RestoreVisitor(ctx, original)
		require.NoError(t, err)

		assert.NotEqual(t, visitor.ID, restored.ID)
		assert.WithinDuration(t, original.CreatedAt, restored.CreatedAt, time.Second)
	})

	t.Run("cascade delete removes visits", func(t *testing.T) {
		hashcode := "dddddddddddddddd"
		b, err := boothDAO.Insert(ctx, Booth{
			BoothName:        "Space",
			Ministry:         "MOSTI",
			Agency:           "MYSA",
			AbbreviationName: "SPC",
			Hashcode:         hashcode,
		})
		require.NoError(t, err)

		v, err := visitorDAO.Insert(ctx, Visitor{
			Name:     "Farid",
			Email:    "farid@example.com",
			Gender:   "male",
			CookieID: "badc0de",
		})
		require.NoError(t, err)

		_, err = visitDAO.Insert(ctx, Visit{
			VisitorID: v.ID,
			BoothID:   b.ID,
			VisitedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		require.NoError(t, boothDAO.Delete(ctx, b.ID))

		count, err := visitDAO.CountByVisitorID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
