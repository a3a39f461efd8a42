package constant

// 错误类别
const (
	KindNone           = "none"
	KindConfig         = "config"
	KindUnknownStyle   = "unknown_style"
	KindMalformedTable = "malformed_table"
	KindEncoding       = "encoding"
	KindIO             = "io"
	KindInternal       = "internal"
)

// 日志字段
const (
	LogFieldRunID    = "run_id"
	LogFieldPath     = "path"
	LogFieldKind     = "kind"
	LogFieldSections = "sections"
	LogFieldBytes    = "bytes"
)
