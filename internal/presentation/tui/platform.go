package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(target string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", target) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target) //nolint:gosec
	case "darwin":
		return exec.Command("open", target) //nolint:gosec
	default:
		return nil
	}
}

// openBrowser hands an app link or a mailto link to the desktop.
func openBrowser(target string) error {
	cmd := OSOpenCmd(target)
	if cmd == nil {
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return cmd.Start()
}
