package testutil

import (
	"io"

	"github.com/shohaib/portfolio-cms/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, false)
}
