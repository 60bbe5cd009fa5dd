// Package logger 封装zerolog，提供全局结构化日志
//
// 使用示例：
//
//	if err := logger.Init(logger.Options{Level: "info", Format: "json"}); err != nil {
//	    log.Fatal(err)
//	}
//	logger.Get().Info().Str("book_uid", uid).Msg("图书浏览")
//
// 请求级别的Logger由HTTP中间件放入context，下游使用zerolog.Ctx(ctx)读取
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志配置
type Options struct {
	Level        string // debug/info/warn/error
	Format       string // json/console
	Output       string // stdout/stderr/文件路径
	EnableCaller bool   // 是否输出调用位置
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// New 按配置构造一个Logger，输出到w
func New(opts Options, w io.Writer) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if strings.EqualFold(opts.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.EnableCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), nil
}

// Init 初始化全局Logger（程序启动时调用一次）
func Init(opts Options) error {
	w, err := openOutput(opts.Output)
	if err != nil {
		return err
	}

	l, err := New(opts, w)
	if err != nil {
		return err
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DefaultContextLogger = &l

	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

// Get 返回全局Logger
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("无效的日志级别 %q: %w", s, err)
	}
	return level, nil
}

func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, nil
}
