package docgen

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTable 表格行列不一致或表头非法
	ErrMalformedTable = errors.New("malformed table")
	// ErrEncoding 文本包含无法写入 XML 的字符
	ErrEncoding = errors.New("encoding error")
	// ErrEmptyText 必填文本为空
	ErrEmptyText = errors.New("empty text")
	// ErrInvalidGeometry 页面尺寸非法
	ErrInvalidGeometry = errors.New("invalid page geometry")
)

// HeaderRow 表头行在 MalformedTableError.Row 中的取值
const HeaderRow = -1

// MalformedTableError 表格结构错误，整个文档构建随之中止
type MalformedTableError struct {
	Row    int // 数据行下标，表头问题为 HeaderRow
	Got    int
	Want   int
	Reason string
}

func (e *MalformedTableError) Error() string {
	if e.Row == HeaderRow {
		return fmt.Sprintf("malformed table: headers: %s", e.Reason)
	}
	return fmt.Sprintf("malformed table: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

func (e *MalformedTableError) Is(target error) bool {
	return target == ErrMalformedTable
}

// EncodingError 序列化时发现不支持的字符
type EncodingError struct {
	Text   string // 出错文本，过长时截断
	Offset int    // 字节偏移
	Rune   rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: unsupported character %U at byte %d in %q", e.Rune, e.Offset, e.Text)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}
