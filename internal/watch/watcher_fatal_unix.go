// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// exhausted lists the inotify resource limits that leave a watcher unable
// to recover: the per-user watch limit and the descriptor limits.
var exhausted = []error{syscall.ENOSPC, syscall.EMFILE, syscall.ENFILE}

func isFatalFsnotifyError(err error) bool {
	for _, target := range exhausted {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
