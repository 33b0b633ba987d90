package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"cookenu/internal/config"
	"cookenu/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DBConfig{Driver: "oracle", DSN: "x"}, gormlogger.Silent)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	gdb, err := Open(config.DBConfig{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, Migrate(gdb))
	require.NoError(t, Ping(context.Background(), gdb))

	for _, table := range []interface{}{&model.User{}, &model.Recipe{}, &model.Follower{}} {
		assert.True(t, gdb.Migrator().HasTable(table))
	}
}
