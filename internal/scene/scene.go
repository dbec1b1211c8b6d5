package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lampforge/internal/mesh"
)

const (
	gridExtent     = 30
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// dragSpeed is radians per pixel of mouse drag.
	dragSpeed = 0.005
	maxPitch  = 1.45
	// ambient is the share of light every face gets regardless of its direction.
	ambient = 0.25
)

// lightDir points towards the light.
var lightDir = [3]float32{0.4, 0.8, 0.45}

// face is a triangle ready to draw, already shaded.
type face struct {
	a, b, c rl.Vector3
	col     rl.Color
}

// Scene holds an orbital camera around the shade and draws the current mesh on a centimetre grid.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	// Orbit turns the camera slowly around the shade.
	Orbit bool

	faces   []face
	version int
	base    rl.Color
}

// New returns a scene looking at the origin from above and to the side. Grid is visible by default.
func New() *Scene {
	s := &Scene{GridVisible: true, version: -1, base: rl.NewColor(240, 214, 170, 255)}
	s.Camera.Position = rl.NewVector3(28, 18, 28)
	s.Camera.Target = rl.NewVector3(0, 6, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetMesh replaces the drawn mesh when version differs from the one last set. The mesh is lifted
// so that its lowest point rests on the grid.
func (s *Scene) SetMesh(m *mesh.Mesh, version int) {
	if version == s.version {
		return
	}
	s.version = version
	s.faces = shadeFaces(m, s.base)
}

// Update runs once per frame. With input false (e.g. the terminal is open) only the automatic
// orbit moves the camera.
func (s *Scene) Update(input bool) {
	switch {
	case s.Orbit:
		rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
	case input && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		d := rl.GetMouseDelta()
		orbit(&s.Camera, -d.X*dragSpeed, d.Y*dragSpeed)
	}
	if input {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			zoom(&s.Camera, 1-wheel*0.1)
		}
	}
}

// orbit turns the camera around its target: yaw about the vertical axis, pitch towards the
// poles, stopping short of them.
func orbit(c *rl.Camera3D, yaw, pitch float32) {
	d := rl.Vector3Subtract(c.Position, c.Target)
	r := rl.Vector3Length(d)
	if r == 0 {
		return
	}
	theta := math32.Atan2(d.X, d.Z) + yaw
	phi := math32.Asin(d.Y/r) + pitch
	phi = max(-maxPitch, min(maxPitch, phi))
	flat := r * math32.Cos(phi)
	c.Position = rl.NewVector3(
		c.Target.X+flat*math32.Sin(theta),
		c.Target.Y+r*math32.Sin(phi),
		c.Target.Z+flat*math32.Cos(theta),
	)
}

// zoom scales the camera distance to its target.
func zoom(c *rl.Camera3D, factor float32) {
	d := rl.Vector3Subtract(c.Position, c.Target)
	if l := rl.Vector3Length(d) * factor; l < 2 || l > 400 {
		return
	}
	c.Position = rl.Vector3Add(c.Target, rl.Vector3Scale(d, factor))
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	for i := range s.faces {
		f := &s.faces[i]
		rl.DrawTriangle3D(f.a, f.b, f.c, f.col)
	}
	rl.EndMode3D()
}

// shadeFaces turns m into flat-shaded triangles lit from lightDir.
func shadeFaces(m *mesh.Mesh, base rl.Color) []face {
	if m == nil || m.IsEmpty() {
		return nil
	}
	lo, _ := mesh.Bounds(m)
	lift := -lo[1]
	l := normalize(lightDir)

	faces := make([]face, 0, m.TriangleCount())
	vec := func(i uint32) rl.Vector3 {
		p := m.Point(int(i))
		return rl.NewVector3(p[0], p[1]+lift, p[2])
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := vec(m.Indices[t]), vec(m.Indices[t+1]), vec(m.Indices[t+2])
		n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
		k := float32(ambient)
		if ln := rl.Vector3Length(n); ln > 0 {
			lambert := (n.X*l[0] + n.Y*l[1] + n.Z*l[2]) / ln
			k = ambient + (1-ambient)*max(0, lambert)
		}
		faces = append(faces, face{a: a, b: b, c: c, col: scale(base, k)})
	}
	return faces
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func scale(c rl.Color, k float32) rl.Color {
	return rl.NewColor(uint8(float32(c.R)*k), uint8(float32(c.G)*k), uint8(float32(c.B)*k), c.A)
}

// drawGrid draws a centimetre grid on the XZ plane with major lines every 10 cm and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, 0, 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
