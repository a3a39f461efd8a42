package style

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStyle 样式不存在
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidToken 样式值不合法
	ErrInvalidToken = errors.New("invalid style token")
)

// UnknownStyleError 注册表中不存在的样式名，属于编程错误
type UnknownStyleError struct {
	Name string
	Kind Kind
}

func (e *UnknownStyleError) Error() string {
	if e.Kind != KindAny {
		return fmt.Sprintf("unknown %s style %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown style %q", e.Name)
}

func (e *UnknownStyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}
