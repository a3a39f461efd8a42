package logger

import (
	"os"
	"path"

	"github.com/yockii/styleguide/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 初始化之前使用空日志，库代码和测试可以直接调用
var logger = zap.NewNop()

var stderr zapcore.WriteSyncer = zapcore.Lock(os.Stderr)

// F 用于创建日志字段的简写
func F(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// 初始化日志
func Init() {
	logFile := config.GetString("log.filename")
	if logFile == "" {
		logFile = "logs/styleguide.log"
	}

	level, err := zapcore.ParseLevel(config.GetString("log.level"))
	if err != nil {
		level = zap.InfoLevel
	}

	// 配置编码器
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core

	// 确保日志目录存在
	logDir := path.Dir(logFile)
	dirErr := os.MkdirAll(logDir, 0755)
	if dirErr == nil {
		// 配置日志输出
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.GetInt("log.max_size"), // MB
			MaxBackups: config.GetInt("log.max_backups"),
			MaxAge:     config.GetInt("log.max_age"),   // days
			Compress:   config.GetBool("log.compress"), // 是否压缩
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, level))
	}

	// 命令行运行时同时输出到标准错误，文件不可写时也保留控制台输出
	if config.GetBool("log.console") || dirErr != nil {
		consoleConfig := encoderConfig
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			stderr,
			level,
		))
	}

	// 创建logger
	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	if dirErr != nil {
		Warn("file logging disabled", F("dir", logDir), zap.Error(dirErr))
	}
}

// With 为全局logger追加固定字段
func With(fields ...zap.Field) {
	logger = logger.With(fields...)
}

// Debug 调试级别日志
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info 信息级别日志
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn 警告级别日志
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error 错误级别日志
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync 同步日志缓冲
func Sync() error {
	return logger.Sync()
}
