package workbench

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampforge/internal/commands"
	"lampforge/internal/engineconfig"
	"lampforge/internal/logger"
	"lampforge/internal/mesh"
	"lampforge/internal/preset"
	"lampforge/internal/shape"
)

func newBench(t *testing.T) (*Workbench, *commands.Registry, *logger.Logger) {
	t.Helper()
	prefs := engineconfig.Default()
	prefs.PresetDir = t.TempDir()
	prefs.DownloadDir = t.TempDir()
	log := logger.NewNop()
	w := New(prefs, log)
	reg := commands.NewRegistry()
	w.Register(reg)
	return w, reg, log
}

func TestRegenerateDefaultDrum(t *testing.T) {
	w, _, _ := newBench(t)
	assert.Nil(t, w.Mesh())
	require.NoError(t, w.Regenerate())

	s := w.Stats()
	assert.Equal(t, 2*(shape.ProfileSteps+1)*64, s.Vertices)
	assert.True(t, s.Watertight)
	assert.Equal(t, 1, w.Version())
	assert.Equal(t, ModeShape, w.Report().Mode)
}

func TestSetCommandEditsOnlyGivenFields(t *testing.T) {
	w, reg, log := newBench(t)
	require.NoError(t, reg.Execute([]string{"set", "-segments", "32", "-height", "20"}))

	assert.Equal(t, 32, w.Shape.Segments)
	assert.Equal(t, float32(20), w.Shape.Height)
	assert.Equal(t, float32(5), w.Shape.TopRadius)
	assert.Equal(t, 2*(shape.ProfileSteps+1)*32, w.Stats().Vertices)
	assert.NotEmpty(t, log.Lines())

	before := w.Version()
	assert.Error(t, reg.Execute([]string{"set", "-segments", "2", "-height", "30"}))
	assert.Equal(t, before, w.Version())
	assert.Equal(t, 2*(shape.ProfileSteps+1)*32, w.Stats().Vertices)
	assert.Equal(t, 32, w.Shape.Segments)
	assert.Equal(t, float32(20), w.Shape.Height)

	assert.Error(t, reg.Execute([]string{"set", "-height", "30", "-segments", "lots"}))
	assert.Equal(t, float32(20), w.Shape.Height)

	require.NoError(t, reg.Execute([]string{"set", "-top_radius", "6"}))
	assert.Equal(t, before+1, w.Version())
	assert.Equal(t, 32, w.Shape.Segments)

	resolution := w.Relief.Resolution
	assert.Error(t, reg.Execute([]string{"relief", "-resolution", "1"}))
	assert.Equal(t, ModeShape, w.Mode())
	assert.Equal(t, resolution, w.Relief.Resolution)
}

func TestStyleCommand(t *testing.T) {
	w, reg, _ := newBench(t)
	require.NoError(t, reg.Execute([]string{"style", "geometric_poly"}))
	assert.Equal(t, "geometric_poly", w.Shape.Type)
	assert.True(t, w.Stats().Watertight)

	err := reg.Execute([]string{"style", "teapot"})
	assert.True(t, errors.Is(err, mesh.ErrUnsupportedShapeType))
	assert.Error(t, reg.Execute([]string{"style"}))
}

func TestReliefCommandUsesDemoImageOrShell(t *testing.T) {
	w, reg, _ := newBench(t)
	require.NoError(t, reg.Execute([]string{"relief", "-resolution", "12", "-carrier", "arc", "-curve_radius", "8"}))
	assert.Equal(t, ModeRelief, w.Mode())
	assert.True(t, w.Stats().Watertight)
	lithophane := w.Stats().Vertices

	require.NoError(t, reg.Execute([]string{"relief", "-image", NoImage}))
	assert.True(t, w.Stats().Watertight)
	assert.NotEqual(t, lithophane, w.Stats().Vertices)
}

func TestReliefFromImageFile(t *testing.T) {
	w, reg, _ := newBench(t)
	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 12)})
		}
	}
	path := filepath.Join(t.TempDir(), "gradient.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	require.NoError(t, reg.Execute([]string{"relief", "-image", path, "-resolution", "5"}))
	// A 5x10 cell grid for the 2:1 image: 6x11 vertices on each face.
	assert.Equal(t, 2*(5+1)*(10+1), w.Stats().Vertices)

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "image/png")
		_, _ = rw.Write(buf.Bytes())
	}))
	defer srv.Close()
	require.NoError(t, reg.Execute([]string{"relief", "-image", srv.URL + "/gradient.png", "-resolution", "4"}))
	assert.Equal(t, 2*(4+1)*(8+1), w.Stats().Vertices)
	assert.FileExists(t, filepath.Join(w.prefs.DownloadDir, "gradient.png"))

	assert.Error(t, reg.Execute([]string{"relief", "-image", filepath.Join(t.TempDir(), "missing.png")}))
}

func TestPresetAndSaveCommands(t *testing.T) {
	w, reg, log := newBench(t)
	require.NoError(t, reg.Execute([]string{"preset", "cage"}))
	assert.Equal(t, "cage", w.Name())
	assert.Equal(t, "lattice", w.Shape.Type)
	assert.Equal(t, float32(20), w.Shape.Height)

	require.NoError(t, reg.Execute([]string{"preset"}))
	assert.True(t, strings.Contains(strings.Join(log.Lines(), "\n"), "lithophane_tube"))

	out := filepath.Join(t.TempDir(), "mine.toml")
	require.NoError(t, reg.Execute([]string{"save", out}))
	p, err := preset.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "mine", p.Name)
	assert.Equal(t, "lattice", p.Shape.Type)
	assert.Equal(t, 10, p.Shape.GridDensity)

	assert.Error(t, reg.Execute([]string{"save", "x.json"}))
	assert.Error(t, reg.Execute([]string{"preset", "missing"}))
}

func TestStatsCommandLogsYAML(t *testing.T) {
	w, reg, log := newBench(t)
	require.NoError(t, w.Regenerate())
	require.NoError(t, reg.Execute([]string{"stats"}))
	joined := strings.Join(log.Lines(), "\n")
	assert.Contains(t, joined, "watertight: true")
	assert.Contains(t, joined, "triangles:")
}

func TestBindShapeLeavesUnsetFields(t *testing.T) {
	f := preset.ShapeForm{Height: 12, RibDepth: 0.3}
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	BindShape(fs, &f)
	require.NoError(t, fs.Parse([]string{"-rib_count", "7", "-fitter", "uno"}))
	assert.Equal(t, float32(12), f.Height)
	assert.Equal(t, float32(0.3), f.RibDepth)
	assert.Equal(t, 7, f.RibCount)
	assert.Equal(t, "uno", string(f.Fitter.Type))

	assert.Error(t, fs.Parse([]string{"-fitter", "hook"}))
	assert.Error(t, fs.Parse([]string{"-height", "tall"}))
}

func TestBindReliefBoolFlag(t *testing.T) {
	var f preset.ReliefForm
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	BindRelief(fs, &f)
	require.NoError(t, fs.Parse([]string{"-inverted", "-contrast", "-20"}))
	assert.True(t, f.Inverted)
	assert.Equal(t, float32(-20), f.Contrast)
}
