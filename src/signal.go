package src

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

type signalHandler func(sig os.Signal)

// shutdownSignals stop the cli. SIGINT stays with linenoise, which reads the
// terminal in raw mode and reports ctrl-c as a read error.
var shutdownSignals = []os.Signal{
	unix.SIGHUP,
	unix.SIGTERM,
	unix.SIGQUIT,
}

func SetupSignalHandler(shutdownFunc signalHandler) {
	closeSignalChan := make(chan os.Signal, 1)
	signal.Notify(closeSignalChan, shutdownSignals...)
	go func() {
		sig := <-closeSignalChan
		shutdownFunc(sig)
	}()
}
