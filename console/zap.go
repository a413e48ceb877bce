package console

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConsole writes console channels through a zap logger.
type ZapConsole struct {
	logger *zap.Logger
}

// Ensure ZapConsole satisfies the Console interface at compile time.
var _ Console = (*ZapConsole)(nil)

// NewZapConsole wraps logger. A nil logger yields a plain console encoder on
// stderr at debug level, without caller or stacktrace annotations.
func NewZapConsole(logger *zap.Logger) *ZapConsole {
	if logger == nil {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.CallerKey = zapcore.OmitKey
		encCfg.StacktraceKey = zapcore.OmitKey
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.DebugLevel),
		)
		logger = zap.New(core)
	}
	return &ZapConsole{logger: logger}
}

func (c *ZapConsole) Debug(message string) { c.logger.Debug(message) }
func (c *ZapConsole) Info(message string)  { c.logger.Info(message) }
func (c *ZapConsole) Warn(message string)  { c.logger.Warn(message) }
func (c *ZapConsole) Error(message string) { c.logger.Error(message) }
