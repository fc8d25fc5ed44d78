// Terminal carousel demo: slides rendered as colored panels, draggable with
// the mouse, with keyboard paging and optional audio feedback on snap.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/curiousTauseef/embla-carousel/core"
	"github.com/curiousTauseef/embla-carousel/engine"
	"github.com/curiousTauseef/embla-carousel/event"
	"github.com/curiousTauseef/embla-carousel/input"
	"github.com/curiousTauseef/embla-carousel/parameter"
)

var (
	axisFlag   = flag.String("axis", "horizontal", "Scroll axis: horizontal, vertical")
	loopFlag   = flag.Bool("loop", false, "Wraparound scrolling")
	slidesFlag = flag.Int("slides", 7, "Number of slides")
	groupFlag  = flag.Int("group", 1, "Slides per scroll (0 = auto)")
	soundFlag  = flag.Bool("sound", false, "Audible feedback on select/settle")
)

const (
	slideSpanH = 24 // Slide extent in cells, horizontal axis
	slideSpanV = 8  // Slide extent in cells, vertical axis
)

var slideColors = []tcell.Color{
	tcell.ColorDarkCyan,
	tcell.ColorDarkMagenta,
	tcell.ColorDarkGreen,
	tcell.ColorDarkBlue,
	tcell.ColorDarkRed,
	tcell.ColorDarkGoldenrod,
	tcell.ColorDarkSlateGray,
}

type demo struct {
	screen tcell.Screen
	axis   core.Axis
	eng    *engine.Engine
	sched  *engine.StepScheduler

	// Latest render state, written by the engine's render callback
	location float64
	loops    []engine.LoopPoint

	dragging  bool
	audioInit bool
	status    string
}

func main() {
	// Reset the terminal before the stack trace lands, or it prints garbled
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ncarousel-demo crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	axis, err := core.ParseAxis(*axisFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	d := &demo{
		screen: screen,
		axis:   axis,
		sched:  engine.NewStepScheduler(time.Now()),
	}

	opts := engine.DefaultOptions()
	opts.Axis = axis
	opts.Loop = *loopFlag
	opts.SlidesToScroll = *groupFlag

	eng, err := engine.New(d.measureProvider(), d.sched, opts, d.onRender)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Engine construction failed: %v\n", err)
		os.Exit(1)
	}
	d.eng = eng
	d.location = eng.Location()

	if *soundFlag {
		if err := d.initAudio(); err != nil {
			// Non-fatal, demo runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer speaker.Close()
	}
	d.wireEvents()
	eng.Emit(event.Init)

	d.run()
}

// measureProvider lays slides out in a strip along the active axis, sized in
// terminal cells
func (d *demo) measureProvider() engine.MeasureProvider {
	w, h := d.screen.Size()
	span := float64(slideSpanH)
	view := float64(w)
	if d.axis == core.AxisVertical {
		span = float64(slideSpanV)
		view = float64(h)
	}

	slides := make([]core.Rect, *slidesFlag)
	for i := range slides {
		if d.axis == core.AxisVertical {
			slides[i] = core.Rect{Y: float64(i) * span, Width: float64(w), Height: span}
		} else {
			slides[i] = core.Rect{X: float64(i) * span, Width: span, Height: float64(h)}
		}
	}
	if d.axis == core.AxisVertical {
		return engine.StaticMeasure{
			Container: core.Rect{Width: float64(w), Height: view},
			Slides:    slides,
		}
	}
	return engine.StaticMeasure{
		Container: core.Rect{Width: view, Height: float64(h)},
		Slides:    slides,
	}
}

func (d *demo) wireEvents() {
	d.eng.On(event.Select, func(event.Type) {
		d.status = fmt.Sprintf("select -> %d", d.eng.SelectedIndex())
		d.blip(880, 40*time.Millisecond)
	})
	d.eng.On(event.Settle, func(event.Type) {
		d.status = fmt.Sprintf("settled on %d", d.eng.SelectedIndex())
		d.blip(440, 30*time.Millisecond)
	})
	d.eng.On(event.PointerDown, func(event.Type) {
		d.status = "pointer down"
	})
	d.eng.On(event.PointerUp, func(event.Type) {
		d.status = "pointer up"
	})
}

func (d *demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	d.audioInit = true
	return nil
}

func (d *demo) blip(freq float64, duration time.Duration) {
	if !d.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(duration), sine))
}

func (d *demo) onRender(location float64, loops []engine.LoopPoint) {
	d.location = location
	d.loops = loops
}

func (d *demo) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			d.sched.Advance(parameter.FrameInterval)
			d.draw()
		}
	}
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft, tcell.KeyUp:
			d.eng.ScrollPrev()
		case tcell.KeyRight, tcell.KeyDown:
			d.eng.ScrollNext()
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q':
				return false
			case r == 'h' || r == 'k':
				d.eng.ScrollPrev()
			case r == 'l' || r == 'j':
				d.eng.ScrollNext()
			case r >= '0' && r <= '9':
				d.eng.ScrollToIndex(int(r-'0'), 0)
			}
		}

	case *tcell.EventMouse:
		d.handleMouse(ev)

	case *tcell.EventResize:
		d.screen.Sync()
		d.reinit()
	}
	return true
}

// handleMouse reduces tcell button transitions into the engine's pointer
// stream along the active axis
func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	position := d.axis.MeasurePoint(float64(x), float64(y))
	pressed := ev.Buttons()&tcell.Button1 != 0
	now := time.Now()

	switch {
	case pressed && !d.dragging:
		d.dragging = true
		d.eng.HandlePointer(input.PointerEvent{Kind: input.PointerDown, Position: position, Time: now})
	case pressed && d.dragging:
		d.eng.HandlePointer(input.PointerEvent{Kind: input.PointerMove, Position: position, Time: now})
	case !pressed && d.dragging:
		d.dragging = false
		d.eng.HandlePointer(input.PointerEvent{Kind: input.PointerUp, Position: position, Time: now})
	}
}

func (d *demo) reinit() {
	next, err := d.eng.ReInit(d.measureProvider())
	if err != nil {
		// Keep the old engine; a resize must never kill the demo
		d.status = fmt.Sprintf("reinit failed: %v", err)
		return
	}
	d.eng = next
	d.location = next.Location()
	d.loops = nil
	next.Emit(event.Resize)
}

func (d *demo) draw() {
	d.screen.Clear()
	w, h := d.screen.Size()

	shifts := make(map[int]float64, len(d.loops))
	for _, p := range d.loops {
		shifts[p.Index] = p.Shift
	}

	span := slideSpanH
	if d.axis == core.AxisVertical {
		span = slideSpanV
	}

	inView := make(map[int]bool)
	for _, i := range d.eng.SlidesInView() {
		inView[i] = true
	}

	for i := 0; i < *slidesFlag; i++ {
		start := int(float64(i*span) + d.location + shifts[i])
		style := tcell.StyleDefault.Background(slideColors[i%len(slideColors)])
		if i == d.eng.SelectedIndex() {
			style = style.Bold(true)
		}
		if !inView[i] {
			style = style.Dim(true)
		}
		label := fmt.Sprintf(" %d ", i)
		if d.axis == core.AxisVertical {
			d.drawVSlide(start, span, w, h, style, label)
		} else {
			d.drawHSlide(start, span, w, h, style, label)
		}
	}

	d.drawStatus(w, h)
	d.screen.Show()
}

func (d *demo) drawHSlide(start, span, w, h int, style tcell.Style, label string) {
	for x := start; x < start+span-1; x++ {
		if x < 0 || x >= w {
			continue
		}
		for y := 2; y < h-3; y++ {
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for j, r := range label {
		x := start + span/2 - len(label)/2 + j
		if x >= 0 && x < w {
			d.screen.SetContent(x, h/2, r, nil, style.Foreground(tcell.ColorWhite))
		}
	}
}

func (d *demo) drawVSlide(start, span, w, h int, style tcell.Style, label string) {
	for y := start; y < start+span-1; y++ {
		if y < 0 || y >= h-2 {
			continue
		}
		for x := 2; x < w-2; x++ {
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for j, r := range label {
		y := start + span/2
		x := w/2 - len(label)/2 + j
		if y >= 0 && y < h-2 {
			d.screen.SetContent(x, y, r, nil, style.Foreground(tcell.ColorWhite))
		}
	}
}

func (d *demo) drawStatus(w, h int) {
	// Snap dots
	snaps := d.eng.ScrollSnaps()
	for i := range snaps {
		r := '○'
		if i == d.eng.SelectedIndex() {
			r = '●'
		}
		d.screen.SetContent(w/2-len(snaps)+i*2, h-2, r, nil, tcell.StyleDefault)
	}

	// Progress bar
	fill := int(d.eng.Progress() * float64(w-1))
	for x := 0; x < w; x++ {
		r := '─'
		if x <= fill {
			r = '━'
		}
		d.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault)
	}

	text := fmt.Sprintf(" slide %d/%d  progress %.2f  %s ",
		d.eng.SelectedIndex()+1, len(snaps), d.eng.Progress(), d.status)
	for j, r := range text {
		if j < w {
			d.screen.SetContent(j, 0, r, nil, tcell.StyleDefault.Reverse(true))
		}
	}
}
