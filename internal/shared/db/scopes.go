// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// Live keeps rows that are not hidden behind an archive record.
//
//	db.Model(&models.CommuneModel{}).Scopes(db.Live()).Find(&rows)
func Live() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date_archivage IS NULL")
	}
}

// Archived keeps rows whose date_archivage is set.
func Archived() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date_archivage IS NOT NULL")
	}
}

// LiveWithAlias is Live for queries that join several archivable tables.
func LiveWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".date_archivage IS NULL")
	}
}

func ArchivedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".date_archivage IS NOT NULL")
	}
}

// Paginate applies OFFSET/LIMIT. A non-positive limit leaves the query unbounded.
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Offset(offset).Limit(limit)
	}
}
