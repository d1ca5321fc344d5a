//go:build unix

package engine

import (
	"os/exec"
	"syscall"
)

// detach starts the segmenter in its own process group so the group can be killed as one
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killGroup(pgid int) {
	_ = syscall.Kill(-pgid, syscall.SIGKILL)
}
