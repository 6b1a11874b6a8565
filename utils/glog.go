package utils

import (
	"io"
	"log"
	"os"
	"sync"
)

const (
	InfoLevel = iota
	ErrorLevel
	Disabled
)

// loggers go to stderr so they never mix with listings on stdout
var (
	errorLog = log.New(os.Stderr, "\033[31m[error]\033[0m ", log.LstdFlags|log.Lshortfile)
	infoLog  = log.New(os.Stderr, "\033[34m[info]\033[0m ", log.LstdFlags)
	loggers  = []*log.Logger{errorLog, infoLog}
	mux      sync.Mutex
)

// Error ErrorF exit the process and skip deferred calls
// ErrorP ErrorPf only log, the caller must return
var (
	Error   = errorLog.Fatal
	ErrorF  = errorLog.Fatalf
	ErrorP  = errorLog.Println
	ErrorPf = errorLog.Printf
	Info    = infoLog.Println
	InfoF   = infoLog.Printf
)

func SetLevel(level int) {
	mux.Lock()
	defer mux.Unlock()

	for _, logger := range loggers {
		logger.SetOutput(os.Stderr)
	}

	if ErrorLevel < level {
		errorLog.SetOutput(io.Discard)
	}
	if InfoLevel < level {
		infoLog.SetOutput(io.Discard)
	}
}
