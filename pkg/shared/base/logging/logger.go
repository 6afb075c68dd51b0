// 指示: miu200521358
// Package logging はビューア共通のログ出力契約を提供する。
package logging

import (
	"log"
	"os"
	"sync"
)

// ILogger はログ出力契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
}

// stdLogger は標準logパッケージによるILogger実装を表す。
type stdLogger struct {
	logger *log.Logger
	debug  bool
}

var (
	defaultLoggerMu sync.Mutex
	defaultLogger   ILogger
)

// DefaultLogger は既定ロガーを返す。未設定時は標準エラー出力ロガーを遅延生成する。
func DefaultLogger() ILogger {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewStdLogger(false)
	}
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。読込ゴルーチンと並行に呼んでも安全。
func SetDefaultLogger(logger ILogger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defaultLogger = logger
	defaultLoggerMu.Unlock()
}

// NewStdLogger は標準エラー出力へ書き込むロガーを生成する。
func NewStdLogger(debug bool) ILogger {
	return &stdLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
		debug:  debug,
	}
}

// Debug はデバッグログを出力する。デバッグ無効時は何もしない。
func (l *stdLogger) Debug(format string, params ...any) {
	if !l.debug {
		return
	}
	l.logger.Printf("[DEBUG] "+format, params...)
}

// Info は情報ログを出力する。
func (l *stdLogger) Info(format string, params ...any) {
	l.logger.Printf("[INFO] "+format, params...)
}

// Warn は警告ログを出力する。
func (l *stdLogger) Warn(format string, params ...any) {
	l.logger.Printf("[WARN] "+format, params...)
}

// Error はエラーログを出力する。
func (l *stdLogger) Error(format string, params ...any) {
	l.logger.Printf("[ERROR] "+format, params...)
}
