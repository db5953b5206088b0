package execute

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

// Command starts command in a detached shell and does not wait for it.
func Command(command string) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return errors.Wrapf(cmd.Start(), "cannot start %q", command)
}
