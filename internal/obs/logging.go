// Package obs contains observability utilities such as logging.
package obs

import "go.uber.org/zap"

// Logger is the global structured logger used by the service. It defaults
// to a no-op logger so library code and tests can log unconditionally.
var Logger = zap.NewNop()

// InitLogger initializes the global Logger with a production JSON config.
//
// InitLogger is exported to allow other packages to initialize the Logger.
func InitLogger() {
	cfg := zap.NewProductionConfig()
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Logger = l
}
