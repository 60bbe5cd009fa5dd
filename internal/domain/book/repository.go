package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 每个方法对应一次数据库会话(一个连接,一到两条SQL)
// 3. 仓储只负责取数,默认值、回退等业务规则由Service处理
type Repository interface {
	// ListPopular 按豆瓣评分人数降序取前limit本
	ListPopular(ctx context.Context, limit int) ([]*Book, error)

	// ListRecommended 读取用户的推荐图书
	// 用户不存在返回ErrUserNotFound;recBooks为空或NULL返回ErrNoRecommendation
	ListRecommended(ctx context.Context, userToken string) ([]*Book, error)

	// Search 书名或作者匹配pattern(已展开的LIKE模式),offset/limit分页
	Search(ctx context.Context, pattern string, offset, limit int) ([]*Book, error)

	// FindDetail 查询图书详情,不存在返回ErrBookNotFound
	FindDetail(ctx context.Context, uid string) (*Book, error)

	// ListByLabel 查询某标签下的图书,标签不存在返回空列表
	ListByLabel(ctx context.Context, labelName string, order SortColumn, offset, limit int) ([]*Book, error)

	// IncViewCount 浏览次数+1(原子upsert)
	// token无对应用户时返回ErrUserNotFound,由Service决定如何处理
	IncViewCount(ctx context.Context, userToken, bookUID string) error

	// Count 图书总数
	Count(ctx context.Context) (int64, error)

	// LabelUseCount 标签的useCount,不存在返回ErrLabelNotFound
	LabelUseCount(ctx context.Context, labelName string) (int64, error)

	// ListLabelNames 图书的所有标签名
	ListLabelNames(ctx context.Context, bookUID string) ([]string, error)
}

// SortColumn 标签列表允许的排序字段
// 只能通过ParseSortColumn构造,仓储层用固定映射表生成ORDER BY,不拼接字符串
type SortColumn string

const (
	// SortByDoubanRateSum 按豆瓣评分人数排序
	SortByDoubanRateSum SortColumn = "doubanRateSum"

	// DefaultSortColumn 默认排序字段
	DefaultSortColumn = SortByDoubanRateSum
)

// allowedSortColumns 排序字段白名单
var allowedSortColumns = map[string]SortColumn{
	string(SortByDoubanRateSum): SortByDoubanRateSum,
}

// ParseSortColumn 解析排序字段,不在白名单内的值一律视为默认字段
func ParseSortColumn(s string) SortColumn {
	if col, ok := allowedSortColumns[s]; ok {
		return col
	}
	return DefaultSortColumn
}
