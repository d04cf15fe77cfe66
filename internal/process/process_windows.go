package process

import (
	"os/exec"
	"syscall"
)

func killProcess(cmd *exec.Cmd, _ bool) error {
	return cmd.Process.Kill()
}

func initCmd(cmd *exec.Cmd, detached bool) {
	if detached {
		cmd.SysProcAttr = &syscall.SysProcAttr{
			CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
		}
	}
}
