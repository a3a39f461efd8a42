package style

import (
	"fmt"
	"sort"
)

// Registry 只读的样式注册表
type Registry struct {
	tokens map[string]Token
	order  []string
}

// Overrides 来自配置文件的覆盖值，键为令牌名称
type Overrides struct {
	Colors  map[string]string
	Sizes   map[string]float64
	Spacing map[string]float64
	Radius  map[string]float64
}

// New 由给定令牌创建注册表，名称重复或取值非法时返回错误
func New(tokens ...Token) (*Registry, error) {
	r := &Registry{tokens: make(map[string]Token, len(tokens))}
	for _, t := range tokens {
		if err := r.add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Load 以内置主题为基础应用覆盖值
// 覆盖已有名称时必须保持类型一致，颜色保留原有不透明度
func Load(o Overrides) (*Registry, error) {
	base := Defaults()
	index := make(map[string]int, len(base))
	for i, t := range base {
		index[t.Name] = i
	}

	apply := func(t Token) error {
		i, ok := index[t.Name]
		if !ok {
			index[t.Name] = len(base)
			base = append(base, t)
			return nil
		}
		prev := base[i]
		if prev.Kind != t.Kind {
			return fmt.Errorf("%w: %s: cannot override %s token with %s", ErrInvalidToken, t.Name, prev.Kind, t.Kind)
		}
		if t.Kind == KindColor {
			t.Opacity = prev.Opacity
		}
		base[i] = t
		return nil
	}

	for _, name := range sortedKeys(o.Colors) {
		if err := apply(Color(name, o.Colors[name])); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(o.Sizes) {
		if err := apply(Size(name, o.Sizes[name])); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(o.Spacing) {
		if err := apply(Spacing(name, o.Spacing[name])); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(o.Radius) {
		if err := apply(Radius(name, o.Radius[name])); err != nil {
			return nil, err
		}
	}

	return New(base...)
}

// MustDefault 返回内置主题的注册表，内置值非法时 panic
func MustDefault() *Registry {
	r, err := New(Defaults()...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(t Token) error {
	t, err := t.validate()
	if err != nil {
		return err
	}
	if _, ok := r.tokens[t.Name]; ok {
		return fmt.Errorf("%w: duplicate token %q", ErrInvalidToken, t.Name)
	}
	r.tokens[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Resolve 按名称解析令牌
func (r *Registry) Resolve(name string) (Token, error) {
	return r.Lookup(name, KindAny)
}

// Lookup 按名称与类型解析令牌，类型不符视为不存在
func (r *Registry) Lookup(name string, kind Kind) (Token, error) {
	t, ok := r.tokens[name]
	if !ok || (kind != KindAny && t.Kind != kind) {
		return Token{}, &UnknownStyleError{Name: name, Kind: kind}
	}
	return t, nil
}

// Color 解析颜色令牌
func (r *Registry) Color(name string) (Token, error) {
	return r.Lookup(name, KindColor)
}

// Size 解析字号令牌
func (r *Registry) Size(name string) (Token, error) {
	return r.Lookup(name, KindSize)
}

// Names 按声明顺序列出指定类型的令牌名称
func (r *Registry) Names(kind Kind) []string {
	var names []string
	for _, name := range r.order {
		if kind == KindAny || r.tokens[name].Kind == kind {
			names = append(names, name)
		}
	}
	return names
}

// Len 令牌数量
func (r *Registry) Len() int {
	return len(r.order)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
