package gorm

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/pettymatters/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestStore(t *testing.T) {
	testsuite.TestForumStores(t, func(t *testing.T) (*testsuite.Stores, error) {
		dbFile := filepath.Join(t.TempDir(), "test.sqlite")

		db, err := gorm.Open(gormlite.Open(dbFile), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite database")
		}

		if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
			return nil, errors.WithStack(err)
		}

		t.Cleanup(func() {
			if internalDB, err := db.DB(); err == nil {
				internalDB.Close()
			}
		})

		store := NewStore(db)

		return &testsuite.Stores{
			Topics:   store,
			Comments: store,
		}, nil
	})
}
