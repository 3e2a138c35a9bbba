package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"dinebook/models"
)

// Lookup meja di dalam transaksi create harus memegang FOR UPDATE di
// MySQL; di SQLite klausa itu tidak boleh muncul karena tidak didukung.
func TestLockTableRowPerDialect(t *testing.T) {
	mysqlDB, err := gorm.Open(mysql.New(mysql.Config{
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	stmt := lockTableRow(mysqlDB).
		Where("id = ? AND restaurant_id = ? AND is_available = ?", 1, 1, true).
		Find(&models.Table{}).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")

	sqliteDB := setupServiceDB(t).Session(&gorm.Session{DryRun: true})
	stmt = lockTableRow(sqliteDB).
		Where("id = ? AND restaurant_id = ? AND is_available = ?", 1, 1, true).
		Find(&models.Table{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
