//go:build !windows

// flock-based advisory locking for an input file being read.
package driver

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ErrFileLocked is returned when the input file is already locked by
// another process.
var ErrFileLocked = errors.New("input file is locked by another process")

// lockFile acquires a shared advisory lock on f, so a concurrent writer
// can be detected rather than racing a half-written line.
func lockFile(f *os.File) error {
	err := unix.Flock(int(f.Fd()), unix.LOCK_SH|unix.LOCK_NB)
	if err != nil {
		if err == unix.EWOULDBLOCK {
			return ErrFileLocked
		}
		return err
	}
	return nil
}

// unlockFile releases the lock acquired by lockFile.
func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
