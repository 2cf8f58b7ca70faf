package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/document"
	"github.com/kk-code-lab/extract-text/internal/layout"
	inputui "github.com/kk-code-lab/extract-text/internal/ui/input"
	renderui "github.com/kk-code-lab/extract-text/internal/ui/render"
	"github.com/kk-code-lab/extract-text/internal/viewer"
	"go.uber.org/zap"
)

// Options configures the viewer session.
type Options struct {
	Buffer   *document.Buffer
	Files    int
	TabWidth int
	Logger   *zap.Logger
}

// Application represents the running viewer.
type Application struct {
	screen         tcell.Screen
	view           *viewer.Controller
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	actionCh       chan inputui.Action
	logger         *zap.Logger
	text           string
	clipboardCmd   []string
	clipboardAvail bool
}

// NewApplication opens the terminal screen and lays out the buffer on it.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	// Parse mouse sequences so wheel and clicks don't leak as key events.
	screen.EnableMouse()
	return newApplication(screen, opts), nil
}

func newApplication(screen tcell.Screen, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buf := opts.Buffer
	if buf == nil {
		buf = document.NewBuffer("")
	}
	clipboardCmd, clipboardAvail := detectClipboard()

	actionCh := make(chan inputui.Action, 10)
	app := &Application{
		screen:         screen,
		renderer:       renderui.NewRenderer(screen, opts.Files),
		input:          inputui.NewInputHandler(actionCh),
		actionCh:       actionCh,
		logger:         logger,
		text:           buf.FullText,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
	}

	w, h := screen.Size()
	engine := layout.NewEngine(layout.TerminalMetrics{}, opts.TabWidth)
	app.view = viewer.NewController(engine, buf, layout.Size{Width: w, Height: h}, app.teardown)
	app.input.SetView(app.view)
	return app
}

// Close releases the screen. It is safe to call more than once.
func (app *Application) Close() error {
	app.view.Close()
	return nil
}

func (app *Application) teardown() {
	app.logger.Debug("closing viewer")
	app.screen.Fini()
}
