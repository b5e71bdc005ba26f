//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/mobile/event/touch"
)

type jsWindow struct {
	canvas js.Value
	input  InputState

	// keep the event callbacks alive as long as the window exists
	callbacks []js.Func
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh; touch-action:none")

	win := &jsWindow{
		canvas: canvas,
	}

	win.listen("pointerdown", touch.TypeBegin)
	win.listen("pointermove", touch.TypeMove)
	win.listen("pointerup", touch.TypeEnd)
	win.listen("pointercancel", touch.TypeEnd)

	return win, nil
}

func (g *jsWindow) listen(event string, typ touch.Type) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		ev.Call("preventDefault")

		ratio := js.Global().Get("devicePixelRatio").Float()
		x := float32(ev.Get("offsetX").Float() * ratio)
		y := float32(ev.Get("offsetY").Float() * ratio)

		seq := touch.Sequence(ev.Get("pointerId").Int())

		if typ == touch.TypeMove {
			g.input.Mouse.position(x, y)
		}

		g.input.Touches.handle(touch.Event{X: x, Y: y, Sequence: seq, Type: typ})
		return nil
	})

	g.canvas.Call("addEventListener", event, fn)
	g.callbacks = append(g.callbacks, fn)
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Int()
	height := vv.Get("height").Int()
	return uint32(float64(width) * ratio), uint32(float64(height) * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	for _, fn := range g.callbacks {
		fn.Release()
	}
}

func (g *jsWindow) Run(render func(input UpdateInputState) error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	var updateInputState UpdateInputState = func() InputState {
		// events were delivered between two animation frames
		state := g.input.snapshot()
		g.input.nextTick()
		return state
	}

	done := make(chan error, 1)

	renderWrapper := func(this js.Value, args []js.Value) any {
		resizeCanvas(g.canvas)

		if err := render(updateInputState); err != nil {
			done <- err
			return false
		}

		return true
	}

	fn := js.FuncOf(renderWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	return <-done
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}
