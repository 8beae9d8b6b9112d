package main

import (
	"context"
	"io"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/keyscribe/keyscribe/internal/app"
	"github.com/keyscribe/keyscribe/internal/input/key"
	"github.com/keyscribe/keyscribe/internal/surface"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "interactive terminal playground",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (.json, .yaml or .toml)",
			},
			&cli.StringFlag{
				Name:  "text",
				Usage: "initial field content",
				Value: "hello world good morning",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runPlayground(cmd.String("config"), cmd.String("text"))
		},
	}
}

// playHost exposes the playground's single field to the engine.
type playHost struct {
	field *surface.PlainField
}

func (h *playHost) ActiveField() (surface.Field, bool) { return h.field, true }
func (h *playHost) InnerHost() (surface.Host, bool)    { return nil, false }

func runPlayground(cfgPath, text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	field := surface.NewPlainField(text)
	host := &playHost{field: field}

	status := make(chan string, 8)
	opts := []app.Option{
		app.WithLogOutput(io.Discard),
		app.WithNotifier(app.NotifyFunc(func(m string) {
			select {
			case status <- m:
			default:
			}
		})),
	}
	if cfgPath != "" {
		opts = append(opts, app.WithSettingsFile(cfgPath))
	}
	engine, err := app.New(host, opts...)
	if err != nil {
		return err
	}
	defer engine.Close()
	if err := engine.Watch(); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	// Operations finish asynchronously; a coarse tick keeps the view
	// fresh without a dedicated completion signal.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	statusLine := "Esc quits. Hold the selection modifier with Left/Right to extend by word."
	for {
		drawPlayground(screen, field, statusLine)

		select {
		case msg := <-status:
			statusLine = msg

		case <-ticker.C:

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			kev, quit := screenKey(ev)
			if quit {
				return nil
			}
			if kev == nil {
				continue
			}
			if engine.HandleKeyDown(*kev) {
				continue
			}
			editField(field, ev.(*tcell.EventKey))
		}
	}
}

// screenKey translates a tcell event into an engine key event. The
// second result is true for the quit key.
func screenKey(ev tcell.Event) (*key.Event, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil, false
	}

	mods := key.ModNone
	m := kev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}

	var name string
	switch k := kev.Key(); {
	case k == tcell.KeyEscape:
		return nil, true
	case k == tcell.KeyLeft:
		name = "Left"
	case k == tcell.KeyRight:
		name = "Right"
	case k == tcell.KeyEnter:
		name = "Enter"
	case k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		name = "Backspace"
	case k == tcell.KeyRune:
		r := kev.Rune()
		name = string(r)
		// Terminals fold shift into the rune itself.
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		name = string(rune('A' + int(k-tcell.KeyCtrlA)))
		mods = mods.With(key.ModCtrl)
	default:
		return nil, false
	}

	e := key.NewPress(name, mods)
	return &e, false
}

// editField applies plain editing keys the engine did not consume.
func editField(field *surface.PlainField, kev *tcell.EventKey) {
	switch k := kev.Key(); {
	case k == tcell.KeyLeft:
		moveCaret(field, -1)
	case k == tcell.KeyRight:
		moveCaret(field, +1)
	case k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		sel := field.Selection()
		if sel.IsCollapsed() {
			if sel.Start == 0 {
				return
			}
			_ = field.SetSelection(surface.SelectionOffsets{
				Start: sel.Start - 1, End: sel.Start, Direction: surface.DirBackward,
			})
		}
		_ = field.ReplaceSelection("")
	case k == tcell.KeyEnter:
		_ = field.ReplaceSelection("\n")
	case k == tcell.KeyRune:
		if kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return
		}
		_ = field.ReplaceSelection(string(kev.Rune()))
	}
}

func moveCaret(field *surface.PlainField, delta int) {
	sel := field.Selection()
	pos := sel.ActiveEnd() + delta
	if pos < 0 {
		pos = 0
	}
	if pos > field.Len() {
		pos = field.Len()
	}
	_ = field.SetSelection(surface.Collapsed(pos))
}

func drawPlayground(screen tcell.Screen, field *surface.PlainField, statusLine string) {
	screen.Clear()
	width, height := screen.Size()

	header := "keyscribe playground"
	drawString(screen, 0, 0, header, tcell.StyleDefault.Bold(true))

	sel := field.Selection()
	selected := tcell.StyleDefault.Reverse(true)
	x, y := 0, 2
	for i, r := range []rune(field.Text()) {
		if r == '\n' || x >= width {
			x, y = 0, y+1
			if r == '\n' {
				continue
			}
		}
		style := tcell.StyleDefault
		if i >= sel.Start && i < sel.End {
			style = selected
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	if sel.IsCollapsed() {
		screen.ShowCursor(caretColumn(field, sel.Start, width))
	} else {
		screen.HideCursor()
	}

	if height > 1 {
		drawString(screen, 0, height-1, statusLine, tcell.StyleDefault.Dim(true))
	}
	screen.Show()
}

// caretColumn maps a rune offset to screen coordinates, mirroring the
// wrap logic in drawPlayground.
func caretColumn(field *surface.PlainField, offset, width int) (int, int) {
	x, y := 0, 2
	for i, r := range []rune(field.Text()) {
		if i == offset {
			break
		}
		if r == '\n' || x >= width {
			x, y = 0, y+1
			if r == '\n' {
				continue
			}
		}
		x++
	}
	return x, y
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
