package constant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yockii/styleguide/pkg/config"
	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/style"
	"github.com/yockii/styleguide/pkg/util"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"nil", nil, ExitOK, KindNone},
		{"config", fmt.Errorf("load: %w", config.ErrConfigNotFound), ExitConfig, KindConfig},
		{"bad token", fmt.Errorf("style: %w", style.ErrInvalidToken), ExitConfig, KindConfig},
		{"geometry", docgen.ErrInvalidGeometry, ExitConfig, KindConfig},
		{"unknown style", fmt.Errorf("section %q: %w", "x", &style.UnknownStyleError{Name: "neon", Kind: style.KindColor}), ExitUnknownStyle, KindUnknownStyle},
		{"table", &docgen.MalformedTableError{Row: 0, Got: 1, Want: 2}, ExitMalformed, KindMalformedTable},
		{"encoding", fmt.Errorf("node 3: %w", &docgen.EncodingError{Text: "x", Rune: 0}), ExitEncoding, KindEncoding},
		{"io", &util.IOError{Op: "rename", Path: "/x", Err: errors.New("denied")}, ExitIO, KindIO},
		{"other", errors.New("boom"), ExitInternal, KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ExitCode(tc.err))
			assert.Equal(t, tc.kind, ErrorKind(tc.err))
		})
	}
}
