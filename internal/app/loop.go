package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/layout"
	inputui "github.com/kk-code-lab/extract-text/internal/ui/input"
	"go.uber.org/zap"
)

// Run draws the viewer and handles events until it is closed.
func (app *Application) Run() {
	defer app.view.Close()

	app.renderer.Render(app.view)

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.view.Closed() {
		renderPending := false
		select {
		case ev := <-eventChan:
			renderPending = app.handleEvent(ev)
		case <-sigContCh:
			renderPending = app.resumeAfterStop()
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.view.Closed() {
			app.renderer.Render(app.view)
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventMouse, *tcell.EventResize:
		// A close request arrives as a CloseAction on the channel.
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions applies every queued action. It reports whether any ran.
func (app *Application) processActions() bool {
	applied := false
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
			applied = true
		default:
			return applied
		}
	}
}

func (app *Application) handleAction(action inputui.Action) {
	if app.view.Closed() {
		return
	}
	app.logger.Debug("action", zap.String("type", fmt.Sprintf("%T", action)))

	switch a := action.(type) {
	case inputui.ScrollAction:
		app.view.ScrollVertical(a.Rows)
	case inputui.PageAction:
		if a.Down {
			app.view.PageDown()
		} else {
			app.view.PageUp()
		}
	case inputui.PanAction:
		app.view.PanHorizontal(a.Direction)
	case inputui.JumpAction:
		if a.End {
			app.view.End()
		} else {
			app.view.Home()
		}
	case inputui.ToggleNumbersAction:
		app.view.ToggleNumbered()
	case inputui.ToggleWrapAction:
		app.view.ToggleWrapped()
	case inputui.ResizeAction:
		app.screen.Sync()
		app.view.Resize(layout.Size{Width: a.Width, Height: a.Height})
	case inputui.CopyAction:
		if err := app.handleCopy(); err != nil {
			app.logger.Warn("copy to clipboard failed", zap.Error(err))
		}
	case inputui.SuspendAction:
		app.suspendToShell()
	case inputui.CloseAction:
		app.view.Close()
	}
}
