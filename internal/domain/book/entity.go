package book

// Book 图书实体
// 设计说明:
// 1. UID/Name/ImgURL是列表页需要的身份字段,任何查询都会返回
// 2. 详情字段只有详情查询才会填充,其余查询保持零值
// 3. 数据库中的NULL在映射时统一转成零值(""或0),实体内不出现nil
// 4. 实体只读,不会回写数据库
type Book struct {
	UID    string // 图书唯一标识(不透明字符串)
	Name   string // 书名
	ImgURL string // 封面图片URL

	ISBN              string  // ISBN号
	Author            string  // 作者
	Press             string  // 出版社
	DoubanPoint       float64 // 豆瓣评分
	DoubanRateSum     int64   // 豆瓣评分人数(热度)
	BookDescription   string  // 内容简介
	AuthorDescription string  // 作者简介
	SysuLibURL        string  // 中大图书馆链接
}

// Detail 图书详情字段(均可选)
type Detail struct {
	ISBN              string
	Author            string
	Press             string
	DoubanPoint       float64
	DoubanRateSum     int64
	BookDescription   string
	AuthorDescription string
	SysuLibURL        string
}

// NewBook 创建只含身份字段的图书(列表查询使用)
func NewBook(uid, name, imgURL string) *Book {
	return &Book{
		UID:    uid,
		Name:   name,
		ImgURL: imgURL,
	}
}

// NewBookWithDetail 创建包含详情字段的图书(详情查询使用)
func NewBookWithDetail(uid, name, imgURL string, d Detail) *Book {
	return &Book{
		UID:               uid,
		Name:              name,
		ImgURL:            imgURL,
		ISBN:              d.ISBN,
		Author:            d.Author,
		Press:             d.Press,
		DoubanPoint:       d.DoubanPoint,
		DoubanRateSum:     d.DoubanRateSum,
		BookDescription:   d.BookDescription,
		AuthorDescription: d.AuthorDescription,
		SysuLibURL:        d.SysuLibURL,
	}
}
