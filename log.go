package kerbee

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

// SetupLogging sets the global logrus level and output. Stdout goes through colorable so
// level colors also show on Windows consoles.
func SetupLogging(level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	formatter := &log.TextFormatter{FullTimestamp: true}
	if out == os.Stdout {
		out = colorable.NewColorableStdout()
		formatter.ForceColors = true
	}
	log.SetFormatter(formatter)
	log.SetOutput(out)
	return nil
}
