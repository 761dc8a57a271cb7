//go:build !linux && !windows

package envprobe

import "os/exec"

func configureCommand(cmd *exec.Cmd) {}
