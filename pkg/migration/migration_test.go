package migration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func withRegistry(t *testing.T, regs ...registeredMigration) {
	t.Helper()
	prev := registry
	registry = regs
	t.Cleanup(func() { registry = prev })
}

func TestRunAndRollback(t *testing.T) {
	withRegistry(t, registeredMigration{name: "20250101000001_create_widgets", m: createWidgets{}})
	db := openDB(t)
	var out bytes.Buffer
	r := New(db).WithOutput(&out)

	require.NoError(t, r.Run())
	assert.True(t, db.Migrator().HasTable(&widget{}))
	assert.Contains(t, out.String(), "Migrated:  20250101000001_create_widgets")

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	out.Reset()
	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "Nothing to migrate.")

	require.NoError(t, r.Rollback())
	assert.False(t, db.Migrator().HasTable(&widget{}))

	out.Reset()
	require.NoError(t, r.Rollback())
	assert.Contains(t, out.String(), "Nothing to roll back.")
}

func TestStatus(t *testing.T) {
	withRegistry(t,
		registeredMigration{name: "20250101000001_create_widgets", m: createWidgets{}},
	)
	db := openDB(t)
	var out bytes.Buffer
	r := New(db).WithOutput(&out)

	require.NoError(t, r.Status())
	assert.Contains(t, out.String(), "Pending")

	require.NoError(t, r.Run())
	out.Reset()
	require.NoError(t, r.Status())
	assert.Contains(t, out.String(), "Ran")
}
