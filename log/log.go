package log

import (
	"io"
	"log"
	"os"
)

var (
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
	FatalLogger   *log.Logger
)

func init() {
	// "Wrote ..." reports go to stdout, everything else to stderr.
	InfoLogger = log.New(os.Stdout, "INFO:  ", log.Lmsgprefix)
	WarningLogger = log.New(os.Stderr, "WARN:  ", log.Lmsgprefix)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lmsgprefix)
	FatalLogger = log.New(os.Stderr, "FATAL: ", log.Lmsgprefix)
}

// SetOutput redirects every logger except FatalLogger to w.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	WarningLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}
