package app

import (
	"fmt"
	"log/slog"

	"github.com/mbue/glint/glx"
	"github.com/mbue/glint/window"
)

// loop dispatches windowing events until a close request arrives. Resizes
// only reconfigure the surface, painting happens on redraw requests.
func loop(api glx.API, win window.Window, scene *Scene) error {
	for {
		for _, event := range win.Wait() {
			switch event := event.(type) {
			case window.ResizeEvent:
				slog.Debug("Resize surface",
					slog.Int("width", event.Width),
					slog.Int("height", event.Height),
				)

				api.Viewport(0, 0, int32(event.Width), int32(event.Height))

			case window.RedrawEvent:
				scene.Draw(api)

				if err := win.SwapBuffers(); err != nil {
					return fmt.Errorf("swap buffers: %w", err)
				}

			case window.CloseEvent:
				return nil
			}
		}
	}
}
