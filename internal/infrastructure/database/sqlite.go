package database

import (
	"database/sql"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tag/internal/shared/utils"
)

const sqliteDriverName = "sqlite3_tag"

var registerSQLiteOnce sync.Once

// SQLiteDialector opens dsn through a driver whose LOWER folds every letter
// the way search tokens are folded. The built-in one only folds ASCII, so
// "Étienne" would never match "étienne".
func SQLiteDialector(dsn string) gorm.Dialector {
	registerSQLiteOnce.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", foldLowerSQL, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
}

// foldLowerSQL keeps LOWER's contract: NULL stays NULL, numbers pass through.
func foldLowerSQL(v any) any {
	switch x := v.(type) {
	case string:
		return utils.FoldLower(x)
	case []byte:
		if x == nil {
			return nil
		}
		return utils.FoldLower(string(x))
	default:
		return v
	}
}
