package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/render"
)

// GarmentView is a fyne widget that shows a garment on a raster surface and
// forwards mouse input to an editor controller
type GarmentView struct {
	widget.BaseWidget
	surface  *render.Raster
	editor   *editor.Controller
	image    *canvas.Image
	width    float32
	height   float32
	onChange func(garment.Parameters)
}

// NewGarmentView creates a view with a fixed-size surface
func NewGarmentView(width, height int, opts ...editor.Option) (*GarmentView, error) {
	surface, err := render.NewRaster(width, height)
	if err != nil {
		return nil, err
	}

	v := &GarmentView{
		surface: surface,
		width:   float32(width),
		height:  float32(height),
	}
	v.image = canvas.NewImageFromImage(surface.Image())
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth

	opts = append(opts, editor.WithRenderHook(v.updateImage))
	ed, err := editor.New(surface, opts...)
	if err != nil {
		surface.Close()
		return nil, err
	}
	v.editor = ed

	v.ExtendBaseWidget(v)
	return v, nil
}

// Editor returns the controller behind the view
func (v *GarmentView) Editor() *editor.Controller {
	return v.editor
}

// SetOnChange sets the callback for every redraw
func (v *GarmentView) SetOnChange(callback func(garment.Parameters)) {
	v.onChange = callback
}

// Close releases the raster surface
func (v *GarmentView) Close() error {
	return v.surface.Close()
}

// CreateRenderer creates the renderer for the widget
func (v *GarmentView) CreateRenderer() fyne.WidgetRenderer {
	return &garmentWidgetRenderer{view: v}
}

// MouseDown starts a drag on the primary button
func (v *GarmentView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	v.editor.PointerDown(v.toSurface(event.Position))
	v.notify()
}

// MouseUp ends a drag
func (v *GarmentView) MouseUp(*desktop.MouseEvent) {
	v.editor.PointerUp()
	v.notify()
}

// MouseIn is required by desktop.Hoverable
func (v *GarmentView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved feeds the drag
func (v *GarmentView) MouseMoved(event *desktop.MouseEvent) {
	v.editor.PointerMove(v.toSurface(event.Position))
}

// MouseOut is required by desktop.Hoverable
func (v *GarmentView) MouseOut() {}

// toSurface maps widget coordinates to surface pixels; the image is
// stretched over the whole widget
func (v *GarmentView) toSurface(pos fyne.Position) geometry.Vector2 {
	size := v.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.NewVector2(float64(pos.X), float64(pos.Y))
	}
	return geometry.NewVector2(
		float64(pos.X*v.width/size.Width),
		float64(pos.Y*v.height/size.Height),
	)
}

func (v *GarmentView) updateImage() {
	if v.image == nil {
		return
	}
	v.image.Image = v.surface.Image()
	v.image.Refresh()
	v.notify()
}

func (v *GarmentView) notify() {
	if v.onChange != nil && v.editor != nil {
		v.onChange(v.editor.Parameters())
	}
}

// garmentWidgetRenderer implements fyne.WidgetRenderer
type garmentWidgetRenderer struct {
	view *GarmentView
}

func (g *garmentWidgetRenderer) Layout(size fyne.Size) {
	g.view.image.Resize(size)
}

func (g *garmentWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(g.view.width/2, g.view.height/2)
}

func (g *garmentWidgetRenderer) Refresh() {
	canvas.Refresh(g.view.image)
}

func (g *garmentWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{g.view.image}
}

func (g *garmentWidgetRenderer) Destroy() {}
