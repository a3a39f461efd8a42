package constant

import (
	"errors"

	"github.com/yockii/styleguide/pkg/config"
	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/style"
	"github.com/yockii/styleguide/pkg/util"
)

// 进程退出码
const (
	ExitOK           = 0
	ExitInternal     = 1
	ExitConfig       = 2
	ExitUnknownStyle = 3
	ExitMalformed    = 4
	ExitEncoding     = 5
	ExitIO           = 6
)

// ExitCode 获取错误对应的退出码
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, style.ErrInvalidToken),
		errors.Is(err, docgen.ErrInvalidGeometry):
		return ExitConfig
	case errors.Is(err, style.ErrUnknownStyle):
		return ExitUnknownStyle
	case errors.Is(err, docgen.ErrMalformedTable):
		return ExitMalformed
	case errors.Is(err, docgen.ErrEncoding):
		return ExitEncoding
	case errors.Is(err, util.ErrIO):
		return ExitIO
	default:
		return ExitInternal
	}
}

// ErrorKind 日志中使用的错误类别
func ErrorKind(err error) string {
	switch ExitCode(err) {
	case ExitOK:
		return KindNone
	case ExitConfig:
		return KindConfig
	case ExitUnknownStyle:
		return KindUnknownStyle
	case ExitMalformed:
		return KindMalformedTable
	case ExitEncoding:
		return KindEncoding
	case ExitIO:
		return KindIO
	default:
		return KindInternal
	}
}
