//go:build windows

package envprobe

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureCommand keeps helpers from flashing a console window.
func configureCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
