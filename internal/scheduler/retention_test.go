package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warebilllabs/warebill/internal/clock"
	"github.com/warebilllabs/warebill/internal/config"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	operationrepo "github.com/warebilllabs/warebill/internal/operation/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRetentionScheduler(t *testing.T, days int, now time.Time) (*Scheduler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&operationdomain.OperationLog{}))

	s := New(Params{
		DB:  db,
		Log: zap.NewNop(),
		Config: config.Config{
			Retention: config.RetentionConfig{OperationLogDays: days, Interval: "1h"},
		},
		Clock:         clock.Fixed{At: now},
		OperationRepo: operationrepo.Provide(),
	})
	return s, db
}

func seedLog(t *testing.T, db *gorm.DB, node *snowflake.Node, operatedAt time.Time) snowflake.ID {
	t.Helper()
	log := &operationdomain.OperationLog{
		ID:         node.Generate(),
		CustomerID: 1,
		Type:       operationdomain.OperationInbound,
		BatchCode:  "B",
		Quantity:   1,
		OperatedAt: operatedAt,
		CreatedAt:  operatedAt,
	}
	require.NoError(t, db.Create(log).Error)
	return log.ID
}

func TestRetentionJobDeletesOldLogs(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s, db := newRetentionScheduler(t, 30, now)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	oldID := seedLog(t, db, node, now.AddDate(0, 0, -45))
	freshID := seedLog(t, db, node, now.AddDate(0, 0, -5))

	require.NoError(t, s.RetentionJob(context.Background()))

	var remaining []operationdomain.OperationLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, freshID, remaining[0].ID)
	assert.NotEqual(t, oldID, remaining[0].ID)
}

func TestRetentionJobDisabled(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s, db := newRetentionScheduler(t, 0, now)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	seedLog(t, db, node, now.AddDate(0, 0, -400))

	require.NoError(t, s.RetentionJob(context.Background()))

	var count int64
	require.NoError(t, db.Model(&operationdomain.OperationLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIntervalFallback(t *testing.T) {
	s, _ := newRetentionScheduler(t, 30, time.Now())
	s.cfg.Interval = "not-a-duration"
	assert.Equal(t, defaultInterval, s.interval())

	s.cfg.Interval = "15m"
	assert.Equal(t, 15*time.Minute, s.interval())
}
