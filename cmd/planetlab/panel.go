package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/cubeplanet/internal/engine/camera"
	"github.com/Faultbox/cubeplanet/internal/engine/picking"
	"github.com/Faultbox/cubeplanet/internal/engine/scene"
	"github.com/Faultbox/cubeplanet/internal/engine/ui"
	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/noise"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Preview render target size. The image is scaled to the panel.
const (
	previewWidth  = 1024
	previewHeight = 768
)

const (
	editorPanelWidth = float32(380)
	statusBarHeight  = float32(28)
	statusTimeout    = 5 * time.Second
)

var (
	colorWarn = imgui.NewVec4(1, 0.8, 0, 1)
	colorErr  = imgui.NewVec4(1, 0.4, 0.4, 1)
	colorDim  = imgui.NewVec4(0.7, 0.7, 0.7, 1)
)

func (app *App) handleShortcuts() {
	if imgui.CurrentIO().WantTextInput() {
		return
	}
	switch {
	case ui.IsKeyPressed(imgui.KeyF12):
		app.screenshot()
	case ui.IsKeyPressed(imgui.KeyF5):
		app.regen.Force(app.edit)
	case ui.IsKeyPressed(imgui.KeyR):
		app.edit = app.edit.Reseed(int64(len(app.edit.Layers)))
		app.changed()
	}
	ctrlS := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyS)
	if imgui.IsKeyChordPressed(ctrlS) {
		app.save()
	}
	ctrlO := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyO)
	if imgui.IsKeyChordPressed(ctrlO) {
		app.openFileDialog()
	}
}

func (app *App) renderPanels(pos, size imgui.Vec2) {
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	contentHeight := size.Y - statusBarHeight

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(editorPanelWidth, contentHeight))
	if imgui.BeginV("Planet", nil, flags) {
		app.renderFileButtons()
		imgui.Separator()
		app.renderShapeEditor()
		app.renderLayerEditor()
		app.renderDisplayOptions()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+editorPanelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-editorPanelWidth, contentHeight))
	if imgui.BeginV("Preview", nil, flags) {
		app.renderPreviewImage()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X, pos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X, statusBarHeight))
	if imgui.BeginV("Status", nil, flags|imgui.WindowFlagsNoTitleBar) {
		app.renderStatusBar()
	}
	imgui.End()
}

func (app *App) renderFileButtons() {
	if imgui.Button("Open...") {
		app.openFileDialog()
	}
	imgui.SameLine()
	if imgui.Button("Save") {
		app.save()
	}
	imgui.SameLine()
	if imgui.Button("Save As...") {
		app.saveFileDialog()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		app.edit = planet.Default()
		app.changed()
	}

	imgui.Text(app.displayPath())
	if app.dirty() {
		imgui.SameLine()
		imgui.TextColored(colorWarn, "(modified)")
	}
}

func (app *App) renderShapeEditor() {
	if !imgui.TreeNodeExStrV("Shape", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	defer imgui.TreePop()

	radius := float32(app.edit.Radius)
	if imgui.SliderFloat("Radius", &radius, 1, 200) {
		app.edit.Radius = float64(radius)
		app.changed()
	}

	res := int32(app.edit.Resolution)
	if imgui.SliderInt("Resolution", &res, planet.MinResolution, 256) {
		app.edit.Resolution = int(res)
		app.changed()
	}
	if imgui.IsItemHovered() {
		imgui.SetTooltip(fmt.Sprintf("%d vertices per face edge, %d triangles",
			res, 12*(res-1)*(res-1)))
	}

	origin := app.edit.Origin.Array()
	if imgui.DragFloat3("Origin", &origin) {
		app.edit.Origin = math.Vec3FromArray(origin)
		app.changed()
	}

	if imgui.ColorEdit4("Color", &app.edit.Color) {
		app.changed()
	}

	if imgui.BeginCombo("Noise", string(app.edit.Noise)) {
		for _, k := range noise.Kinds {
			if imgui.SelectableBoolV(string(k), k == app.edit.Noise, 0, imgui.NewVec2(0, 0)) && k != app.edit.Noise {
				app.edit.Noise = k
				app.changed()
			}
		}
		imgui.EndCombo()
	}
}

func (app *App) renderLayerEditor() {
	if !imgui.TreeNodeExStrV("Noise Layers", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	defer imgui.TreePop()

	for i := range app.edit.Layers {
		imgui.PushIDInt(int32(i))
		app.renderLayer(i)
		imgui.PopID()
		if i >= len(app.edit.Layers)-1 {
			break
		}
	}

	if imgui.ButtonV("Add Layer", imgui.NewVec2(-1, 0)) {
		if next, ok := addLayer(app.edit); ok {
			app.edit = next
			app.changed()
		}
	}
}

// renderLayer draws the widgets for layer i. Structural edits replace
// app.edit, so the caller re-checks the layer count after each call.
func (app *App) renderLayer(i int) {
	l := &app.edit.Layers[i]
	if !imgui.TreeNodeExStrV(fmt.Sprintf("Layer %d", i), imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	defer imgui.TreePop()

	seed := int32(l.Seed)
	if imgui.InputInt("Seed", &seed) {
		l.Seed = int64(seed)
		app.changed()
	}

	amp := float32(l.Amplitude)
	if imgui.SliderFloat("Amplitude", &amp, 0, 10) {
		l.Amplitude = float64(amp)
		app.changed()
	}

	freq := float32(l.Frequency)
	if imgui.SliderFloat("Frequency", &freq, 0.01, 16) {
		l.Frequency = float64(freq)
		app.changed()
	}

	origin := l.Origin.Array()
	if imgui.DragFloat3("Offset", &origin) {
		l.Origin = math.Vec3FromArray(origin)
		app.changed()
	}

	imgui.BeginDisabledV(i == 0)
	if imgui.Checkbox("Mask by previous", &l.MaskByPrevious) {
		app.changed()
	}
	imgui.EndDisabled()

	var (
		next planet.Config
		ok   bool
	)
	if imgui.Button("Up") {
		next, ok = moveLayer(app.edit, i, -1)
	}
	imgui.SameLine()
	if imgui.Button("Down") {
		next, ok = moveLayer(app.edit, i, 1)
	}
	imgui.SameLine()
	if imgui.Button("Remove") {
		next, ok = removeLayer(app.edit, i)
	}
	if ok {
		app.edit = next
		app.changed()
	}
}

func (app *App) renderDisplayOptions() {
	if !imgui.TreeNodeExStrV("Display", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	defer imgui.TreePop()

	pr := app.scene.Planet
	if imgui.BeginCombo("Shading", pr.Mode.String()) {
		for i, name := range scene.ShadeModeNames {
			mode := scene.ShadeMode(i)
			if imgui.SelectableBoolV(name, mode == pr.Mode, 0, imgui.NewVec2(0, 0)) {
				pr.Mode = mode
			}
		}
		imgui.EndCombo()
	}

	imgui.Checkbox("Wireframe", &app.wireframe)
	imgui.Checkbox("Normals", &app.scene.ShowNormals)
	imgui.Checkbox("Face bounds", &app.scene.ShowBounds)
	imgui.Checkbox("Tint faces", &pr.HighlightFace)

	imgui.Text("Faces:")
	for f, label := range faceLabels() {
		visible := !pr.HiddenFaces[f]
		if f%3 != 0 {
			imgui.SameLine()
		}
		if imgui.Checkbox(label, &visible) {
			pr.HiddenFaces[f] = !visible
		}
	}

	imgui.Separator()
	imgui.Checkbox("Live update", &app.liveUpdate)
	imgui.SameLine()
	if imgui.Button("Regenerate") {
		app.regen.Force(app.edit)
	}
}

func (app *App) renderPreviewImage() {
	avail := imgui.ContentRegionAvail()
	aspect := app.preview.Aspect()
	displayW, displayH := avail.X, avail.X/aspect
	if displayH > avail.Y-60 {
		displayH = avail.Y - 60
		displayW = displayH * aspect
	}
	if displayW <= 0 || displayH <= 0 {
		return
	}

	startX := imgui.CursorPosX()
	if displayW < avail.X {
		imgui.SetCursorPosX(startX + (avail.X-displayW)/2)
	}

	// GL textures are bottom-up, so flip V.
	imgui.ImageWithBgV(
		ui.TextureRef(app.preview.ColorTexture()),
		imgui.NewVec2(displayW, displayH),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	app.hover = nil
	if imgui.IsItemHovered() {
		mouse := imgui.MousePos()
		corner := imgui.ItemRectMin()
		app.pick(mouse.X-corner.X, mouse.Y-corner.Y, displayW, displayH)
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			app.orbit.HandleDrag(mouse.X-app.lastMouse[0], mouse.Y-app.lastMouse[1])
		}
		app.lastMouse = [2]float32{mouse.X, mouse.Y}

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			app.orbit.HandleZoom(wheel)
		}
	}

	if imgui.Button("Fit View") {
		if cur := app.regen.Current(); cur.Mesh != nil {
			b := cur.Mesh.Bounds()
			app.orbit.FitToBounds(b.Min, b.Max, app.cfg.Graphics.FOV)
		}
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to orbit, scroll to zoom, F12 screenshot)")

	app.renderMeshStats()
}

func (app *App) renderMeshStats() {
	cur := app.regen.Current()
	if cur.Mesh == nil {
		return
	}
	e := cur.Mesh.Elevation()
	imgui.Text(fmt.Sprintf("Vertices: %d  Triangles: %d  Generated in %v",
		len(cur.Mesh.Vertices), cur.Mesh.TriangleCount(), cur.Duration.Round(time.Microsecond)))
	imgui.Text(fmt.Sprintf("Elevation: %.3f .. %.3f", e.Min, e.Max))
	if h := app.hover; h != nil {
		imgui.TextColored(colorDim, fmt.Sprintf("Cursor: %s face, elevation %.4f at (%.2f, %.2f, %.2f)",
			h.Face, h.Elevation, h.Point.X, h.Point.Y, h.Point.Z))
	}
}

// pick casts a ray through a point of the displayed preview image.
func (app *App) pick(x, y, w, h float32) {
	cur := app.regen.Current()
	if cur.Mesh == nil {
		return
	}
	proj := camera.Projection(app.cfg.Graphics.FOV, app.preview.Aspect())
	ray := picking.ScreenToRay(x, y, w, h, proj.Mul(app.orbit.ViewMatrix()).Inverse())
	if hit, ok := picking.PickPlanet(ray, cur.Mesh, cur.Config.Origin, cur.Config.Radius); ok {
		app.hover = &hit
	}
}

func (app *App) renderStatusBar() {
	switch {
	case app.regen.Busy():
		imgui.TextColored(colorDim, "Generating...")
	case app.regen.Err() != nil:
		imgui.TextColored(colorErr, fmt.Sprintf("Last edit rejected: %v", app.regen.Err()))
	case app.status != "" && time.Since(app.statusTime) < statusTimeout:
		imgui.Text(app.status)
	default:
		imgui.TextColored(colorDim, "Ready")
	}
}
