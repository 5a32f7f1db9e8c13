package stager

import (
	"context"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/jnistage/internal/logger"
	"github.com/oshokin/jnistage/internal/platform"
)

// BinaryName is the executable name of the staging command.
const BinaryName = "jnistage"

// countOtherInstances returns how many other processes run the executable.
func countOtherInstances(executable string) (int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	thisProcessID := os.Getpid()
	count := 0

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if strings.EqualFold(process.Executable(), executable) {
			count++
		}
	}

	return count, nil
}

// warnIfAlreadyRunning logs a warning when another stager is running.
// Concurrent runs against the same destination race file by file; this is
// reported, not prevented.
func warnIfAlreadyRunning(ctx context.Context, profile platform.Profile) {
	executable := BinaryName
	if profile.IsWindows() {
		executable += ".exe"
	}

	count, err := countOtherInstances(executable)
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)
		return
	}

	if count > 0 {
		logger.WarnKV(ctx, "Another staging process is running, installed files may be overwritten",
			"executable", executable, "instances", count)
	}
}
