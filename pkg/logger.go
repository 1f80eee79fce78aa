package pkg

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelErrOnly
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "none"
	case LogLevelErrOnly:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return LogLevelNone, nil
	case "error", "err", "":
		return LogLevelErrOnly, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelNone, fmt.Errorf("Invalid log level: %s", s)
}

var (
	log_level = LogLevelErrOnly
	log_out   io.Writer = os.Stdout
	log_err   io.Writer = os.Stderr
)

func GetLogLevel() LogLevel { return log_level }

// SetLogOutput redirects all loggers; nil keeps the current writer.
// The active level is re-applied afterwards.
func SetLogOutput(out, err io.Writer) {
	if out != nil {
		log_out = out
	}
	if err != nil {
		log_err = err
	}
	SetLogLevel(log_level)
}

func SetLogLevel(level LogLevel) {
	log_level = level

	info_logger.SetOutput(io.Discard)
	warn_logger.SetOutput(io.Discard)
	debug_logger.SetOutput(io.Discard)
	error_logger.SetOutput(io.Discard)
	fatal_logger.SetOutput(log_err)

	switch level {
	case LogLevelErrOnly:
		error_logger.SetOutput(log_err)
	case LogLevelInfo:
		error_logger.SetOutput(log_err)
		info_logger.SetOutput(log_out)
		warn_logger.SetOutput(log_out)
	case LogLevelDebug:
		error_logger.SetOutput(log_err)
		info_logger.SetOutput(log_out)
		warn_logger.SetOutput(log_out)
		debug_logger.SetOutput(log_out)
	}

	debug_logger.Println("log level set to", level)
}

var (
	info_logger  = log.New(io.Discard, "INFO: ", log.Lshortfile|log.LstdFlags)
	error_logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile|log.LstdFlags)
	fatal_logger = log.New(os.Stderr, "FATAL: ", log.Lshortfile|log.LstdFlags)
	warn_logger  = log.New(io.Discard, "WARN: ", log.Lshortfile|log.LstdFlags)
	debug_logger = log.New(io.Discard, "DEBUG: ", log.Lshortfile|log.LstdFlags)
)

var (
	InfoLog  = info_logger.Println
	ErrorLog = error_logger.Println
	FatalLog = fatal_logger.Fatalln
	WarnLog  = warn_logger.Println
	DebugLog = debug_logger.Println
)
