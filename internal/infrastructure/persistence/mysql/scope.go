package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/xiebiao/bookrec/internal/domain/book"
	apperrors "github.com/xiebiao/bookrec/pkg/errors"
	"github.com/xiebiao/bookrec/pkg/metrics"
	"github.com/xiebiao/bookrec/pkg/tracing"
)

const tracerName = "bookrec/mysql"

// Scope 数据库会话作用域
// 设计说明:
// 1. 每个仓储操作都在一个Scope内执行:取一个连接 → 执行1-2条SQL → 归还连接
// 2. Read使用gorm的Connection固定同一个连接;Write使用Transaction,出错自动ROLLBACK
// 3. 无论成功失败,连接都会在fn返回后归还连接池
// 4. 每次执行记录一个Span和一组db_*指标,非预期错误写日志并包装成AppError(50001)
//
// 使用示例:
//
//	err := scope.Read(ctx, "BookDetail", func(tx *gorm.DB) error {
//	    return tx.Where("uid = ?", uid).Take(&model).Error
//	})
type Scope struct {
	db *gorm.DB
}

// NewScope 创建会话作用域
func NewScope(db *gorm.DB) *Scope {
	return &Scope{db: db}
}

// Read 在单个连接上执行只读操作
// Connection交给回调的句柄会累积条件,这里换成固定在同一连接上的新会话,
// 同一个fn里的多条查询互不影响
func (s *Scope) Read(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	return s.run(ctx, operation, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
			return fn(conn.Session(&gorm.Session{NewDB: true}))
		})
	})
}

// Write 在事务中执行写操作
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
func (s *Scope) Write(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	return s.run(ctx, operation, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(fn)
	})
}

func (s *Scope) run(ctx context.Context, operation string, exec func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "mysql."+operation)
	defer span.End()

	start := time.Now()
	err := exec(ctx)
	result := resultOf(err)
	metrics.ObserveDBQuery(operation, result, time.Since(start))

	if result != metrics.ResultError {
		return err
	}

	tracing.RecordError(span, err)
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("operation", operation).
		Str("trace_id", tracing.ExtractTraceID(ctx)).
		Msg("数据库操作失败")

	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.WrapDB(err, "数据库错误")
}

// resultOf 把错误归类为指标的result标签
// 领域层约定的"不存在"类错误不算失败
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case apperrors.IsNotFound(err), errors.Is(err, book.ErrNoRecommendation):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}
