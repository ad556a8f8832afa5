// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"syscall"
)

// exhausted lists Win32 errors (ERROR_TOO_MANY_OPEN_FILES,
// ERROR_INVALID_HANDLE, ERROR_NOT_ENOUGH_MEMORY) after which
// ReadDirectoryChangesW cannot recover.
var exhausted = []error{syscall.Errno(4), syscall.Errno(6), syscall.Errno(8)}

func isFatalFsnotifyError(err error) bool {
	for _, target := range exhausted {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
