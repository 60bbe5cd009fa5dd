package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder 记录所有执行过的SQL
type sqlRecorder struct {
	mu   sync.Mutex
	sqls []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface       { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.sqls = append(r.sqls, sql)
	r.mu.Unlock()
}

func (r *sqlRecorder) Reset() {
	r.mu.Lock()
	r.sqls = nil
	r.mu.Unlock()
}

func (r *sqlRecorder) SQLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sqls...)
}

// setupTestDB 在临时目录创建SQLite数据库并建表
// 使用文件而不是:memory:,Connection取到的连接才能看到同一份数据
func setupTestDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	dbPath := filepath.Join(t.TempDir(), "bookrec.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: recorder})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(Models()...))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	recorder.Reset()
	return db, recorder
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// seedBooks 插入n本图书,doubanRateSum依次递减(b000最热门)
func seedBooks(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&BookModel{
			UID:           fmt.Sprintf("b%03d", i),
			Name:          nullString(fmt.Sprintf("book-%03d", i)),
			ImgURL:        nullString(fmt.Sprintf("https://img/%03d.jpg", i)),
			Author:        nullString(fmt.Sprintf("author-%03d", i)),
			DoubanPoint:   sql.NullFloat64{Float64: 8.0, Valid: true},
			DoubanRateSum: sql.NullInt64{Int64: int64(10000 - i*10), Valid: true},
		}).Error)
	}
}

func seedLabel(t *testing.T, db *gorm.DB, uid, name string, useCount int64, bookUIDs ...string) {
	t.Helper()
	require.NoError(t, db.Create(&BookLabelModel{UID: uid, Name: name, UseCount: useCount}).Error)
	for _, b := range bookUIDs {
		require.NoError(t, db.Create(&LabelOfBookModel{BookLabelUID: uid, BookUID: b}).Error)
	}
}
