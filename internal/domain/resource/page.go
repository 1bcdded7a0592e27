package resource

const (
	// DefaultPageSize は page_size 未指定時の件数
	DefaultPageSize = 100
	// MaxPageSize は1ページの上限件数
	MaxPageSize = 500
)

// SanitizePageSize は要求された page_size を [1, MaxPageSize] に収める
func SanitizePageSize(pageSize int32) int {
	size := int(pageSize)
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return size
}
