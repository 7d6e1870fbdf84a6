package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run launches the Gio UI and blocks until the window closes.
func Run(opts Options) error {
	opts = opts.withDefaults()

	go func() {
		g := opts.Config.Canvas
		w := new(app.Window)
		w.Option(
			app.Title("ProtoFace"),
			app.Size(unit.Dp(g.Width), unit.Dp(g.Height+toolbarHeight+logPaneHeight)),
		)
		ui, err := New(w, opts)
		if err != nil {
			opts.Logger.Error("ui: setup failed", "err", err)
			os.Exit(1)
		}
		if err := ui.Run(); err != nil {
			opts.Logger.Error("ui: window closed with error", "err", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
