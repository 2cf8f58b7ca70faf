package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/ui/render"
	"github.com/kk-code-lab/extract-text/internal/viewer"
)

// Action is a viewer command produced from an input event.
type Action interface{}

type ScrollAction struct{ Rows int }
type PageAction struct{ Down bool }
type PanAction struct{ Direction viewer.Direction }
type JumpAction struct{ End bool }
type ToggleNumbersAction struct{}
type ToggleWrapAction struct{}
type CopyAction struct{}
type SuspendAction struct{}
type CloseAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// wheelRows is how far one wheel notch scrolls.
const wheelRows = 3

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan Action
	view       *viewer.Controller // for close box hit testing
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetView sets the controller whose window receives mouse clicks.
func (ih *InputHandler) SetView(view *viewer.Controller) {
	ih.view = view
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked to close the viewer.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventMouse:
		return ih.processMouseEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- CloseAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- SuspendAction{}
	case tcell.KeyUp:
		ih.actionChan <- ScrollAction{Rows: -1}
	case tcell.KeyDown:
		ih.actionChan <- ScrollAction{Rows: 1}
	case tcell.KeyLeft:
		ih.actionChan <- PanAction{Direction: viewer.Left}
	case tcell.KeyRight:
		ih.actionChan <- PanAction{Direction: viewer.Right}
	case tcell.KeyPgUp:
		ih.actionChan <- PageAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- PageAction{Down: true}
	case tcell.KeyHome:
		ih.actionChan <- JumpAction{}
	case tcell.KeyEnd:
		ih.actionChan <- JumpAction{End: true}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- CloseAction{}
		return false
	case 'k':
		ih.actionChan <- ScrollAction{Rows: -1}
	case 'j':
		ih.actionChan <- ScrollAction{Rows: 1}
	case 'h':
		ih.actionChan <- PanAction{Direction: viewer.Left}
	case 'l':
		ih.actionChan <- PanAction{Direction: viewer.Right}
	case 'b':
		ih.actionChan <- PageAction{}
	case ' ':
		ih.actionChan <- PageAction{Down: true}
	case 'g':
		ih.actionChan <- JumpAction{}
	case 'G':
		ih.actionChan <- JumpAction{End: true}
	case 'n':
		ih.actionChan <- ToggleNumbersAction{}
	case 'w':
		ih.actionChan <- ToggleWrapAction{}
	case 'y':
		ih.actionChan <- CopyAction{}
	}
	return true
}

func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		ih.actionChan <- ScrollAction{Rows: -wheelRows}
	case buttons&tcell.WheelDown != 0:
		ih.actionChan <- ScrollAction{Rows: wheelRows}
	case buttons&tcell.WheelLeft != 0:
		ih.actionChan <- PanAction{Direction: viewer.Left}
	case buttons&tcell.WheelRight != 0:
		ih.actionChan <- PanAction{Direction: viewer.Right}
	case buttons&tcell.Button1 != 0:
		if ih.view == nil {
			return true
		}
		x, y := ev.Position()
		if render.InCloseBox(ih.view.Geometry(), x, y) {
			ih.actionChan <- CloseAction{}
			return false
		}
	}
	return true
}
