package resource

import (
	"strconv"
	"strings"
)

// ErrInvalidID はIDとして解釈できない名前を表す
var ErrInvalidID = InvalidArgument("IDが不正です")

// ParseID はリソース名を正の64ビット整数IDとして解釈する
func ParseID(name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// FormatID はIDをリソース名に変換する
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
