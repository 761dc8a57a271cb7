//go:build linux

package envprobe

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// configureCommand makes the kernel kill the helper if envprobe dies first.
func configureCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: unix.SIGKILL}
}
