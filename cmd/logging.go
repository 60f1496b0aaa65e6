package cmd

import (
	"log/slog"
	"os"

	"github.com/Manu343726/x86regs/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var logFile *os.File

// Builds the CLI logger: human readable logs to stderr and, if a log file is given,
// JSON logs to that file as well
func newLogger(level string, file string) (*slog.Logger, error) {
	var logLevel slog.Level

	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, utils.MakeError(err, "invalid log level '%v'", level)
	}

	options := &slog.HandlerOptions{Level: logLevel}
	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, options)}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}

		closeLogFile()
		logFile = f
		handlers = append(handlers, slog.NewJSONHandler(f, options))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
