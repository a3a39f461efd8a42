package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yockii/styleguide/internal/constant"
	"github.com/yockii/styleguide/internal/content"
	"github.com/yockii/styleguide/pkg/config"
	"github.com/yockii/styleguide/pkg/docgen"
	"github.com/yockii/styleguide/pkg/logger"
	"github.com/yockii/styleguide/pkg/style"
	"github.com/yockii/styleguide/pkg/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		logger.Error("style guide failed", logger.F(constant.LogFieldKind, constant.ErrorKind(err)), zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "style guide failed: %v\n", err)
		os.Exit(constant.ExitCode(err))
	}
}

// run 生成风格指南，args 最多包含一个输出路径
func run(ctx context.Context, args []string) error {
	// 初始化配置
	if err := config.Init(); err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one output path, got %d arguments", config.ErrInvalidConfig, len(args))
	}
	if len(args) == 1 {
		config.Set("output.path", args[0])
	}

	if err := util.InitNode(config.GetUint64("app.node_id")); err != nil {
		return fmt.Errorf("%w: app.node_id: %v", config.ErrInvalidConfig, err)
	}

	// 初始化日志
	logger.Init()
	defer func() { _ = logger.Sync() }()
	logger.With(logger.F(constant.LogFieldRunID, util.NewID()))

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	builder := docgen.NewBuilder(reg, docgen.WithTableWidth(config.GetInt("table.width")))

	sections, err := content.Sections(builder, reg)
	if err != nil {
		return err
	}

	doc, err := docgen.Assemble(sections, docgen.PageGeometry{
		Width:  config.GetInt("page.width"),
		Height: config.GetInt("page.height"),
		Margin: config.GetInt("page.margin"),
	})
	if err != nil {
		return err
	}

	opts := []docgen.DocxOption{
		docgen.WithTitle(config.GetString("document.title")),
		docgen.WithCreator(config.GetString("document.creator")),
	}
	if !config.GetBool("output.reproducible") {
		opts = append(opts, docgen.WithCreated(time.Now()))
	}

	out := config.GetString("output.path")
	data, err := docgen.NewDocxBuilder(opts...).WriteFile(ctx, doc, out)
	if err != nil {
		return err
	}

	// 用独立解析器读回，确认文件结构完整
	outline, err := docgen.Inspect(data)
	if err != nil {
		return fmt.Errorf("verify %s: %w", out, err)
	}
	logger.Info("style guide created",
		logger.F(constant.LogFieldPath, out),
		logger.F(constant.LogFieldSections, len(sections)),
		logger.F("headings", len(outline.Headings)),
		logger.F("tables", outline.Tables),
		logger.F("page_breaks", outline.PageBreaks),
		logger.F(constant.LogFieldBytes, len(data)))
	fmt.Printf("Style guide created: %s\n", out)
	return nil
}

// loadRegistry 内置主题叠加 style.* 配置
func loadRegistry() (*style.Registry, error) {
	sizes, err := config.GetFloat64Map("style.sizes")
	if err != nil {
		return nil, err
	}
	spacing, err := config.GetFloat64Map("style.spacing")
	if err != nil {
		return nil, err
	}
	radius, err := config.GetFloat64Map("style.radius")
	if err != nil {
		return nil, err
	}
	return style.Load(style.Overrides{
		Colors:  config.GetStringMapString("style.colors"),
		Sizes:   sizes,
		Spacing: spacing,
		Radius:  radius,
	})
}
