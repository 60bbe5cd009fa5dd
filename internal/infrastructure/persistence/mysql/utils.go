package mysql

import (
	"strings"
)

// parseUIDList 解析逗号分隔的uid列表(user.recBooks)
// 推荐系统写入时可能带引号('b1','b2'),去掉引号、空白和空项:
// "a, 'b',,\"c\"" → [a b c]
func parseUIDList(s string) []string {
	parts := strings.Split(s, ",")
	uids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p = strings.TrimSpace(p); p != "" {
			uids = append(uids, p)
		}
	}
	return uids
}
