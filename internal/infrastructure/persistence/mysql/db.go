package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookrec/internal/infrastructure/config"
	applog "github.com/xiebiao/bookrec/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. SQL日志通过zerolog输出，级别由database.log_level控制
// 4. 表结构由推荐系统维护，这里不做AutoMigrate
//
// 返回的cleanup用于关闭连接池（wire会在程序退出时调用）
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	log := applog.Get()

	// 1. 连接数据库
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: NewGormLogger(log, cfg.Database),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 2. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 3. 测试连接
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("dbname", cfg.Database.DBName).
		Msg("数据库连接成功")

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("关闭数据库连接失败")
		}
	}

	return db, cleanup, nil
}

// NewGormLogger 把GORM的SQL日志接到zerolog
// record not found不算错误（详情/标签查询会正常遇到）
func NewGormLogger(log *zerolog.Logger, cfg config.DatabaseConfig) logger.Interface {
	return logger.New(gormWriter{log: log}, logger.Config{
		SlowThreshold:             cfg.SlowThreshold,
		LogLevel:                  parseGormLevel(cfg.LogLevel),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// gormWriter 实现logger.Writer
type gormWriter struct {
	log *zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Info().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// =========================================
// GORM表模型
// =========================================
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. 表名和列名沿用推荐系统的驼峰命名，用column tag显式映射
// 3. 可为NULL的列使用sql.Null*类型，转换为领域实体时统一变成零值
// 4. 只有BookModel对应领域实体，其余模型只在仓储内部使用

// BookModel 图书表
type BookModel struct {
	UID               string          `gorm:"column:uid;primaryKey;size:64"`
	Name              sql.NullString  `gorm:"column:name;size:255;comment:书名"`
	ImgURL            sql.NullString  `gorm:"column:imgUrl;size:500;comment:封面图片"`
	ISBN              sql.NullString  `gorm:"column:isbn;size:20"`
	Author            sql.NullString  `gorm:"column:author;size:255;comment:作者"`
	Press             sql.NullString  `gorm:"column:press;size:255;comment:出版社"`
	DoubanPoint       sql.NullFloat64 `gorm:"column:doubanPoint;comment:豆瓣评分"`
	DoubanRateSum     sql.NullInt64   `gorm:"column:doubanRateSum;index;comment:豆瓣评分人数"`
	BookDescription   sql.NullString  `gorm:"column:bookDescription;type:text"`
	AuthorDescription sql.NullString  `gorm:"column:authorDescription;type:text"`
	SysuLibURL        sql.NullString  `gorm:"column:sysuLibUrl;size:500"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "book"
}

// UserModel 用户表（只读取token和推荐结果）
type UserModel struct {
	UID      string         `gorm:"column:uid;primaryKey;size:64"`
	Token    string         `gorm:"column:token;uniqueIndex;size:128"`
	RecBooks sql.NullString `gorm:"column:recBooks;type:text;comment:推荐图书uid,逗号分隔"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "user"
}

// BookLabelModel 标签表
// UseCount是冗余计数，由推荐系统维护
type BookLabelModel struct {
	UID      string `gorm:"column:uid;primaryKey;size:64"`
	Name     string `gorm:"column:name;uniqueIndex;size:64"`
	UseCount int64  `gorm:"column:useCount"`
}

// TableName 指定表名
func (BookLabelModel) TableName() string {
	return "bookLabel"
}

// LabelOfBookModel 图书-标签关联表
type LabelOfBookModel struct {
	BookLabelUID string `gorm:"column:bookLabelUid;primaryKey;size:64"`
	BookUID      string `gorm:"column:bookUid;primaryKey;size:64;index"`
}

// TableName 指定表名
func (LabelOfBookModel) TableName() string {
	return "labelOfBook"
}

// UserBookViewModel 用户浏览计数表
// (userUid, bookUid)为联合主键，upsert依赖这个唯一约束
type UserBookViewModel struct {
	UserUID   string `gorm:"column:userUid;primaryKey;size:64"`
	BookUID   string `gorm:"column:bookUid;primaryKey;size:64"`
	ViewCount int64  `gorm:"column:viewCount"`
}

// TableName 指定表名
func (UserBookViewModel) TableName() string {
	return "userBookView"
}

// Models 返回所有表模型（测试建表使用）
func Models() []interface{} {
	return []interface{}{
		&BookModel{},
		&UserModel{},
		&BookLabelModel{},
		&LabelOfBookModel{},
		&UserBookViewModel{},
	}
}
