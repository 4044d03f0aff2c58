package app

import (
	"os/exec"
	"runtime"
	"strings"
)

// External shell side effects: best effort, never block the loop beyond the
// process spawn, and never fail a command that does not depend on them.

// openWithSystem hands the cursor entry to the OS default handler.
func (a *Application) openWithSystem() {
	e := a.state.CurrentEntry()
	if e == nil {
		return
	}
	args := detectOpenCommand(runtime.GOOS)
	if len(args) == 0 {
		a.state.Message = "No opener available"
		return
	}
	cmd := exec.Command(args[0], append(args[1:], e.Path)...)
	if err := cmd.Start(); err != nil {
		a.state.Message = "Error: " + err.Error()
		return
	}
	go func() { _ = cmd.Wait() }()
	a.state.Message = "Opened: " + e.Path
}

// yankPath pipes the cursor entry's path to the system clipboard tool.
func (a *Application) yankPath() {
	e := a.state.CurrentEntry()
	if e == nil {
		return
	}
	args := detectClipboardCommand(runtime.GOOS)
	if len(args) == 0 {
		a.state.Message = "No clipboard command available"
		return
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(e.Path)
	if err := cmd.Run(); err != nil {
		a.state.Message = "Error: " + err.Error()
		return
	}
	a.state.Message = "Yanked: " + e.Path
}

func detectOpenCommand(goos string) []string {
	if goos == "darwin" {
		return []string{"open"}
	}
	if _, err := exec.LookPath("xdg-open"); err == nil {
		return []string{"xdg-open"}
	}
	return nil
}

func detectClipboardCommand(goos string) []string {
	if goos == "darwin" {
		return []string{"pbcopy"}
	}
	for _, candidate := range [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	} {
		if _, err := exec.LookPath(candidate[0]); err == nil {
			return candidate
		}
	}
	return nil
}
