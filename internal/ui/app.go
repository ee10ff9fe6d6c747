package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchroom/internal/session"
)

// RunApp opens the room window and blocks until it closes. Closing the
// window closes the engine, which discards any stroke in flight.
func RunApp(shareLink string, engine *session.Engine, board *BoardWidget) {
	a := app.New()
	win := a.NewWindow("Sketchroom")
	win.Resize(fyne.NewSize(1024, 768))

	status := widget.NewLabel("Ready")
	if shareLink != "" {
		status.SetText("Share link: " + shareLink)
	}

	toolbar := NewToolbar(engine, win, status)
	win.SetContent(container.NewBorder(toolbar, status, nil, nil, board))
	win.SetOnClosed(engine.Close)
	win.ShowAndRun()
}
