package database

import (
	"bytes"
	"testing"

	"vlog-hub/pkg/config"
	"vlog-hub/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.Config{DBDriver: "mongo"})
	assert.Error(t, err)
}

func TestNewInMemoryDB_Migrates(t *testing.T) {
	db, err := NewInMemoryDB()
	require.NoError(t, err)
	defer Close(db)

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestNewInMemoryDB_IsPrivate(t *testing.T) {
	first, err := NewInMemoryDB()
	require.NoError(t, err)
	defer Close(first)

	second, err := NewInMemoryDB()
	require.NoError(t, err)
	defer Close(second)

	require.NoError(t, first.Create(&models.Therapist{Name: "Dr. A", Specialization: "CBT"}).Error)

	var count int64
	require.NoError(t, second.Model(&models.Therapist{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestNew_SQLiteDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: "file::memory:"}
	db, err := New(cfg)
	require.NoError(t, err)
	defer Close(db)

	assert.NoError(t, AutoMigrate(db))
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: newGormLogger(&buf)})
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, AutoMigrate(db))

	err = db.Where("email = ?", "missing@example.com").First(&models.User{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	err = db.Exec("SELECT * FROM no_such_table").Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "no_such_table")
}
