package style

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind 样式令牌类型
type Kind int

const (
	KindAny     Kind = iota // 仅用于查询
	KindColor               // 颜色，Hex 有效
	KindSize                // 字号，Value 单位为磅
	KindSpacing             // 间距，Value 单位为像素
	KindRadius              // 圆角，Value 单位为像素
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindSize:
		return "size"
	case KindSpacing:
		return "spacing"
	case KindRadius:
		return "radius"
	default:
		return "any"
	}
}

var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Token 命名的不可变样式值
type Token struct {
	Name    string
	Kind    Kind
	Hex     string  // 颜色，6位十六进制，不带 #
	Opacity int     // 颜色不透明度百分比
	Value   float64 // 字号、间距、圆角
}

// Color 创建不透明颜色令牌
func Color(name, hex string) Token {
	return Token{Name: name, Kind: KindColor, Hex: hex, Opacity: 100}
}

// TranslucentColor 创建带不透明度的颜色令牌
func TranslucentColor(name, hex string, opacity int) Token {
	return Token{Name: name, Kind: KindColor, Hex: hex, Opacity: opacity}
}

// Size 创建字号令牌
func Size(name string, pt float64) Token {
	return Token{Name: name, Kind: KindSize, Value: pt}
}

// Spacing 创建间距令牌
func Spacing(name string, px float64) Token {
	return Token{Name: name, Kind: KindSpacing, Value: px}
}

// Radius 创建圆角令牌
func Radius(name string, px float64) Token {
	return Token{Name: name, Kind: KindRadius, Value: px}
}

// validate 校验并规范化令牌
func (t Token) validate() (Token, error) {
	if strings.TrimSpace(t.Name) == "" {
		return t, fmt.Errorf("%w: empty name", ErrInvalidToken)
	}
	switch t.Kind {
	case KindColor:
		hex := strings.TrimPrefix(t.Hex, "#")
		if !hexPattern.MatchString(hex) {
			return t, fmt.Errorf("%w: %s: color %q is not 6 hex digits", ErrInvalidToken, t.Name, t.Hex)
		}
		t.Hex = strings.ToUpper(hex)
		if t.Opacity == 0 {
			t.Opacity = 100
		}
		if t.Opacity < 0 || t.Opacity > 100 {
			return t, fmt.Errorf("%w: %s: opacity %d out of range", ErrInvalidToken, t.Name, t.Opacity)
		}
	case KindSize, KindSpacing, KindRadius:
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) || t.Value <= 0 {
			return t, fmt.Errorf("%w: %s: %s must be a positive finite number, got %v", ErrInvalidToken, t.Name, t.Kind, t.Value)
		}
	default:
		return t, fmt.Errorf("%w: %s: unsupported kind %d", ErrInvalidToken, t.Name, t.Kind)
	}
	return t, nil
}

// RGB 返回颜色的十进制分量
func (t Token) RGB() (r, g, b uint8) {
	v, err := strconv.ParseUint(t.Hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// HalfPoints 字号换算为 WordprocessingML 的半磅单位
func (t Token) HalfPoints() int {
	return int(t.Value*2 + 0.5)
}

// Rem 像素值换算为 rem（基准 16px）
func (t Token) Rem() float64 {
	return t.Value / 16
}
