// Package ui is the Gio desktop front end of the face editor: a fixed size
// LED canvas with Clear and Export actions.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/charmbracelet/log"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/protoface/internal/config"
	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face"
	"github.com/OpenTraceLab/protoface/pkg/face/export"
	"github.com/OpenTraceLab/protoface/pkg/face/render"
)

// toolbarHeight and logPaneHeight are the Dp reserved above and below
// the canvas.
const (
	toolbarHeight = 56
	logPaneHeight = 96
)

// Options configures the editor window.
type Options struct {
	Config *config.Config
	Logger *log.Logger
	State  *AppState
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.State == nil {
		o.State = NewState()
	}
	return o
}

// App drives the Gio window around one editor controller.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *AppState

	ops        op.Ops
	logger     *log.Logger
	explorer   *explorer.Explorer
	invalidate func()

	ctrl     *editor.Controller
	renderer *render.Renderer

	clearBtn   widget.Clickable
	exportBtn  widget.Clickable
	formatBtn  widget.Clickable
	formatMenu *menu.DropdownMenu

	clearIcon  *widget.Icon
	exportIcon *widget.Icon

	logList layout.List
}

// New wires the Gio window, theme, controller and renderer together.
func New(window *app.Window, opts Options) (*App, error) {
	opts = opts.withDefaults()
	cfg := opts.Config

	palette, err := cfg.RenderPalette()
	if err != nil {
		return nil, err
	}
	format, err := cfg.ExportFormat()
	if err != nil {
		return nil, err
	}
	opts.State.SetFormat(format)

	gv := theme.NewTheme("", nil, true)
	gv.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
		Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
		ContrastBg: color.NRGBA{R: 200, G: 40, B: 40, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
	})

	a := &App{
		Window:     window,
		Theme:      gv,
		State:      opts.State,
		logger:     opts.Logger,
		explorer:   explorer.NewExplorer(window),
		invalidate: window.Invalidate,
		renderer:   render.New(cfg.Canvas, palette),
		logList:    layout.List{Axis: layout.Vertical, ScrollToEnd: true},
	}
	saver := &explorerSaver{
		explorer:   a.explorer,
		state:      a.State,
		logger:     a.logger,
		invalidate: a.invalidate,
	}
	a.ctrl = editor.New(face.New(), cfg.Canvas,
		editor.WithSaver(saver),
		editor.WithFilename(cfg.Export.Filename),
	)
	a.ctrl.OnChange = a.modelChanged

	if icon, err := widget.NewIcon(icons.ActionDelete); err == nil {
		a.clearIcon = icon
	} else {
		a.logger.Warn("ui: failed to load clear icon", "err", err)
	}
	if icon, err := widget.NewIcon(icons.FileFileDownload); err == nil {
		a.exportIcon = icon
	} else {
		a.logger.Warn("ui: failed to load export icon", "err", err)
	}
	a.formatMenu = a.buildFormatMenu()
	return a, nil
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) modelChanged() {
	a.State.SetLitCount(a.ctrl.Model().LitCount())
	a.invalidate()
}

func (a *App) press(x, y float64) {
	hit, ok := a.ctrl.Press(x, y)
	if !ok {
		return
	}
	lit, _ := a.ctrl.Model().Get(hit.Panel, hit.Row, hit.Col)
	state := "off"
	if lit {
		state = "on"
	}
	a.logger.Debug("toggle", "cell", hit, "lit", lit)
	a.State.AppendLog(fmt.Sprintf("Toggled %s %s", hit, state))
}

func (a *App) drag(x, y float64, primaryHeld bool) {
	if hit, ok := a.ctrl.Drag(x, y, primaryHeld); ok {
		a.logger.Debug("paint", "cell", hit)
		a.State.AppendLog(fmt.Sprintf("Painted %s", hit))
	}
}

func (a *App) clear() {
	a.ctrl.Clear()
	a.State.SetStatus("Cleared")
	a.State.AppendLog("Cleared all panels")
	a.logger.Debug("cleared all panels")
}

// export sets the pending status first; the saver reports the outcome,
// possibly from another goroutine, and must not be overwritten.
func (a *App) export() {
	f := a.State.Format()
	a.State.SetStatus(fmt.Sprintf("Exporting %s as %s", a.ctrl.Filename(), f))
	if err := a.ctrl.Export(f); err != nil {
		a.logger.Error("export failed", "format", f, "err", err)
		a.State.SetError(err)
		a.State.AppendLog(fmt.Sprintf("Export failed: %v", err))
	}
}

func (a *App) buildFormatMenu() *menu.DropdownMenu {
	formats := export.Formats()
	opts := make([]menu.MenuOption, 0, len(formats))
	for _, f := range formats {
		format := f
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.State.SetFormat(format)
				a.logger.Debug("export format selected", "format", format)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, strings.ToUpper(string(format)))
				if format == a.State.Format() {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(160)
	return drop
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "S", Required: key.ModShortcut},
			key.Filter{Name: key.NameDeleteBackward, Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case "S":
			a.export()
		case key.NameDeleteBackward:
			a.clear()
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.handleKeys(gtx)
	for a.clearBtn.Clicked(gtx) {
		a.clear()
	}
	for a.exportBtn.Clicked(gtx) {
		a.export()
	}

	paint.FillShape(gtx.Ops, a.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	state := a.State.Snapshot()
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutToolbar(gtx, state)
		}),
		layout.Rigid(a.layoutCanvas),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutLogPane(gtx, state)
		}),
	)
}

func (a *App) layoutLogPane(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	height := gtx.Dp(unit.Dp(logPaneHeight))
	if h := gtx.Constraints.Max.Y; h > 0 && height > h {
		height = h
	}
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	paint.FillShape(gtx.Ops, a.Theme.Bg2, clip.Rect{Max: image.Pt(gtx.Constraints.Max.X, height)}.Op())
	return layout.Inset{
		Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return a.layoutLogs(gtx, state)
	})
}

func (a *App) layoutLogs(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	th := a.Theme.Theme
	if len(state.Logs) == 0 {
		return material.Caption(th, "Click an LED to toggle it, drag to paint.").Layout(gtx)
	}
	return a.logList.Layout(gtx, len(state.Logs), func(gtx layout.Context, idx int) layout.Dimensions {
		lbl := material.Caption(th, state.Logs[idx])
		lbl.Color = a.Theme.Palette.Fg
		return lbl.Layout(gtx)
	})
}

func (a *App) layoutToolbar(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(toolbarHeight))
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y
	th := a.Theme.Theme
	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.H6(th, "ProtoFace").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutActionButton(gtx, &a.clearBtn, a.clearIcon, "Clear")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutActionButton(gtx, &a.exportBtn, a.exportIcon, "Export")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutFormatPicker(gtx, state.Format)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutStatus(gtx, state)
			}),
		)
	})
}

func (a *App) layoutActionButton(gtx layout.Context, btn *widget.Clickable, icon *widget.Icon, label string) layout.Dimensions {
	th := a.Theme.Theme
	return material.ButtonLayout(th, btn).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if icon == nil {
						return layout.Dimensions{}
					}
					size := gtx.Dp(unit.Dp(18))
					gtx.Constraints = layout.Exact(image.Pt(size, size))
					return icon.Layout(gtx, th.Palette.ContrastFg)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(th, label)
					lbl.Color = th.Palette.ContrastFg
					return lbl.Layout(gtx)
				}),
			)
		})
	})
}

func (a *App) layoutFormatPicker(gtx layout.Context, current export.Format) layout.Dimensions {
	if a.formatBtn.Clicked(gtx) {
		a.formatMenu.ToggleVisibility(gtx)
	}
	btn := material.Button(a.Theme.Theme, &a.formatBtn, "Format: "+strings.ToUpper(string(current)))
	btn.Inset = layout.UniformInset(unit.Dp(8))
	dims := btn.Layout(gtx)
	a.formatMenu.Layout(gtx, a.Theme)
	return dims
}

func (a *App) layoutStatus(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	th := a.Theme.Theme
	if state.LastError != nil {
		lbl := material.Body2(th, state.LastError.Error())
		lbl.Color = color.NRGBA{R: 230, G: 90, B: 90, A: 255}
		return lbl.Layout(gtx)
	}
	total := face.PanelCount * face.MatrixSize * face.MatrixSize
	text := fmt.Sprintf("%s  ·  %d/%d lit", state.Status, state.LitCount, total)
	return material.Body2(th, text).Layout(gtx)
}

// layoutCanvas draws the LED grid at one canvas unit per Dp. Input is
// registered under the same scale so pointer positions arrive in canvas
// coordinates, the space the layout geometry hit-tests in.
func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a,
			Kinds:  pointer.Press | pointer.Drag,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x, y := float64(pe.Position.X), float64(pe.Position.Y)
		switch pe.Kind {
		case pointer.Press:
			a.press(x, y)
		case pointer.Drag:
			a.drag(x, y, pe.Buttons == pointer.ButtonPrimary)
		}
	}

	g := a.ctrl.Geometry()
	scale := gtx.Metric.PxPerDp
	size := image.Pt(int(float32(g.Width)*scale+0.5), int(float32(g.Height)*scale+0.5))

	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: g.Size()}.Push(gtx.Ops).Pop()
	pointer.CursorCrosshair.Add(gtx.Ops)
	event.Op(gtx.Ops, a)

	a.renderer.Render(render.NewGioCanvas(gtx.Ops), a.ctrl.Model())
	return layout.Dimensions{Size: size}
}
