// Package app owns the terminal session and the event loop that drives the
// tree state engine.
package app

import (
	"bufio"
	"os"

	statepkg "github.com/bresilla/lis/internal/state"
	"github.com/bresilla/lis/internal/ui/input"
	renderui "github.com/bresilla/lis/internal/ui/render"
	"golang.org/x/term"
)

// Application wires the tree state to the tty: raw-mode key input on one
// side, the ANSI renderer on the other.
type Application struct {
	state    *statepkg.TreeState
	reducer  *statepkg.Reducer
	renderer *renderui.Renderer
	keys     *input.KeyReader
	input    *os.File
	output   *os.File
	out      *bufio.Writer
	restore  *term.State
}

// NewApplication acquires the controlling terminal. Rendering talks to the
// tty directly so stdout stays free for the activation result.
func NewApplication(state *statepkg.TreeState) (*Application, error) {
	app := &Application{
		state:   state,
		reducer: statepkg.NewReducer(),
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		app.input = os.Stdin
		app.output = os.Stderr
	} else {
		app.input = tty
		app.output = tty
	}

	app.keys = input.NewKeyReader(bufio.NewReader(app.input))
	app.out = bufio.NewWriter(app.output)
	app.renderer = renderui.NewRenderer(app.out, func() (int, error) {
		w, _, err := term.GetSize(int(app.output.Fd()))
		return w, err
	})
	return app, nil
}

func (a *Application) initTerminal() error {
	if a.state.Options.AltScreen {
		a.out.WriteString("\x1b[?1049h")
	}
	a.out.WriteString("\x1b[?25l")
	a.out.Flush()

	rawState, err := term.MakeRaw(int(a.input.Fd()))
	if err != nil {
		return err
	}
	a.restore = rawState
	return nil
}

func (a *Application) cleanupTerminal() {
	if a.restore != nil {
		_ = term.Restore(int(a.input.Fd()), a.restore)
		a.restore = nil
	}
	a.out.WriteString("\x1b[?25h")
	if a.state.Options.AltScreen {
		a.out.WriteString("\x1b[?1049l")
	}
	a.out.Flush()
	if a.input.Name() == "/dev/tty" {
		_ = a.input.Close()
	}
}
