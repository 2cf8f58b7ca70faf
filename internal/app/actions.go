package app

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var errClipboardUnavailable = errors.New("no clipboard command found")

var commandBuilder = exec.Command

// handleCopy pipes the whole document into the clipboard command.
func (app *Application) handleCopy() error {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		return errClipboardUnavailable
	}
	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(app.text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", app.clipboardCmd[0], err)
	}
	app.logger.Debug("copied document to clipboard")
	return nil
}
