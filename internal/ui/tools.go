package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchroom/internal/export"
	"sketchroom/internal/session"
)

// NewToolbar builds the tool strip: one button per drawing tool, then
// undo/redo and PDF export. Everything calls straight into the engine;
// the toolbar holds no state of its own.
func NewToolbar(engine *session.Engine, win fyne.Window, status *widget.Label) fyne.CanvasObject {
	tools := []struct {
		label string
		tool  session.Tool
	}{
		{"Pencil", session.ToolPencil},
		{"Rect", session.ToolRect},
		{"Circle", session.ToolCircle},
		{"Diamond", session.ToolDiamond},
		{"Line", session.ToolLine},
		{"Arrow", session.ToolArrow},
		{"Eraser", session.ToolEraser},
	}

	items := []fyne.CanvasObject{widget.NewLabel("Tool:")}
	for _, t := range tools {
		items = append(items, widget.NewButton(t.label, func() {
			engine.SetTool(t.tool)
			status.SetText(t.label)
		}))
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), engine.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), engine.Redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showExportDialog(engine, win, status)
		}),
	)

	items = append(items, widget.NewSeparator(), actions, layout.NewSpacer())
	return container.NewHBox(items...)
}

func showExportDialog(engine *session.Engine, win fyne.Window, status *widget.Label) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			log.Printf("[ui] closing export target: %v", err)
		}
		if err := export.PDF(path, engine.Scene()); err != nil {
			log.Printf("[ui] export failed: %v", err)
			status.SetText("Export failed")
			return
		}
		status.SetText(fmt.Sprintf("Exported %d shapes", len(engine.Scene())))
	}, win)
}
