package common

import (
	"io"
	"log"
	"os"

	"github.com/yeti47/cryosnap/server/core/ccc/logging"
)

// SetupLogging sends the standard logger to stdout and a daily log file.
// An empty logDir keeps console logging only. The returned closer must be
// closed on shutdown.
func SetupLogging(logDir, name string) io.Closer {
	if logDir == "" {
		log.SetOutput(os.Stdout)
		return io.NopCloser(nil)
	}

	writer := logging.NewDailyRotatingWriter(logDir, name)
	log.SetOutput(io.MultiWriter(os.Stdout, writer))
	return writer
}
