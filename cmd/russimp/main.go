// russimp - command line front end for the russimp asset importer.
// Imports any format the native library understands, prints a summary of
// the resulting scene, and can preview the geometry as a terminal
// wireframe or write a wireframe frame to a PNG.
//
// Preview controls:
//
//	Mouse drag  - Orbit around the model
//	Scroll      - Zoom in/out
//	W/S         - Orbit up/down
//	A/D         - Orbit left/right
//	Space       - Random spin impulse
//	G           - Toggle ground grid
//	B           - Toggle scene bounds
//	X           - Toggle world axes
//	R           - Reset view
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"

	"github.com/taigrr/russimp"
	"github.com/taigrr/russimp/internal/render"
	"github.com/taigrr/russimp/sys"
)

var (
	viewFlag   = flag.Bool("view", false, "Preview the model as a terminal wireframe")
	pngPath    = flag.String("png", "", "Render one wireframe frame to a PNG file")
	presetPath = flag.String("preset", "", "TOML file with post-processing steps and import properties")
	stepList   = flag.String("steps", "", "Comma-separated post-processing step names (overrides preset)")
	libPath    = flag.String("lib", "", "Path to the native import library")
	hintFlag   = flag.String("hint", "", "Format hint when reading from stdin (obj, glb, ...)")
	verbose    = flag.Bool("verbose", false, "Log native importer output")
	showTree   = flag.Bool("tree", false, "Print the node hierarchy")
	targetFPS  = flag.Int("fps", 60, "Preview frame rate")
	bgColor    = flag.String("bg", "18,18,26", "Preview background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "russimp - 3D asset importer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: russimp [options] <model-file|->\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPreview controls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit around the model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  G/B/X       - Toggle grid, bounds, axes\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Preset is the on-disk import configuration.
type Preset struct {
	Steps      []string       `toml:"steps"`
	Properties map[string]any `toml:"properties"`
}

// importConfig resolves the post-processing steps and properties from the
// preset file and flags. Flags win over the preset file.
func importConfig() (russimp.PostProcess, []russimp.Property, error) {
	steps := russimp.Triangulate | russimp.JoinIdenticalVertices | russimp.GenBoundingBoxes
	var props []russimp.Property

	if *presetPath != "" {
		data, err := os.ReadFile(*presetPath)
		if err != nil {
			return 0, nil, fmt.Errorf("read preset: %w", err)
		}
		var p Preset
		if err := toml.Unmarshal(data, &p); err != nil {
			return 0, nil, fmt.Errorf("parse preset: %w", err)
		}
		if len(p.Steps) > 0 {
			steps, err = russimp.ParseSteps(p.Steps)
			if err != nil {
				return 0, nil, err
			}
		}
		for _, k := range slices.Sorted(maps.Keys(p.Properties)) {
			props = append(props, russimp.Property{Name: k, Value: p.Properties[k]})
		}
	}

	if *stepList != "" {
		names := strings.Split(*stepList, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		parsed, err := russimp.ParseSteps(names)
		if err != nil {
			return 0, nil, err
		}
		steps = parsed
	}
	return steps, props, nil
}

func run(modelPath string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "russimp"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *libPath != "" || *verbose {
		if err := russimp.LoadLibrary(*libPath); err != nil {
			return err
		}
	}
	if *verbose {
		sys.AttachLogStream(func(msg string) {
			logger.Debug("importer", "msg", msg)
		})
		sys.EnableVerboseLogging(true)
	}

	steps, props, err := importConfig()
	if err != nil {
		return err
	}
	logger.Debug("importing", "file", modelPath, "steps", steps)

	start := time.Now()
	var scene *russimp.Scene
	switch {
	case modelPath == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		scene, err = russimp.FromBuffer(data, steps, *hintFlag)
		if err != nil {
			return err
		}
		modelPath = "stdin"
	case len(props) > 0:
		scene, err = russimp.FromFileWithProperties(modelPath, steps, props)
		if err != nil {
			return err
		}
	default:
		scene, err = russimp.FromFile(modelPath, steps)
		if err != nil {
			return err
		}
	}
	logger.Debug("imported", "in", time.Since(start))

	name := filepath.Base(modelPath)
	switch {
	case *pngPath != "":
		return renderPNG(scene, *pngPath)
	case *viewFlag:
		return preview(scene, name)
	default:
		printSummary(os.Stdout, scene, name)
		if *showTree && scene.Root != nil {
			fmt.Println()
			printTree(os.Stdout, scene.Root, 0)
		}
		return nil
	}
}

func printSummary(w io.Writer, sc *russimp.Scene, name string) {
	title := sc.Name
	if title == "" {
		title = name
	}
	verts, faces := 0, 0
	for i := range sc.Meshes {
		verts += len(sc.Meshes[i].Vertices)
		faces += len(sc.Meshes[i].Faces)
	}

	fmt.Fprintf(w, "Scene %q\n", title)
	if !sc.Complete() {
		fmt.Fprintf(w, "  flags:      0x%x (incomplete)\n", sc.Flags)
	} else if sc.Flags != 0 {
		fmt.Fprintf(w, "  flags:      0x%x\n", sc.Flags)
	}
	fmt.Fprintf(w, "  meshes:     %d (%d vertices, %d faces)\n", len(sc.Meshes), verts, faces)
	fmt.Fprintf(w, "  materials:  %d\n", len(sc.Materials))
	fmt.Fprintf(w, "  textures:   %d embedded\n", len(sc.Textures))
	fmt.Fprintf(w, "  animations: %d\n", len(sc.Animations))
	fmt.Fprintf(w, "  lights:     %d\n", len(sc.Lights))
	fmt.Fprintf(w, "  cameras:    %d\n", len(sc.Cameras))
	if len(sc.Skeletons) > 0 {
		fmt.Fprintf(w, "  skeletons:  %d\n", len(sc.Skeletons))
	}
	fmt.Fprintf(w, "  nodes:      %d\n", countNodes(sc.Root))
	if sc.Metadata != nil {
		fmt.Fprintf(w, "  metadata:   %d entries\n", len(sc.Metadata.Keys))
	}

	for i := range sc.Meshes {
		m := &sc.Meshes[i]
		fmt.Fprintf(w, "\nmesh[%d] %q\n", i, m.Name)
		fmt.Fprintf(w, "  vertices: %d  faces: %d  primitives: %s\n",
			len(m.Vertices), len(m.Faces), primitiveNames(m.PrimitiveTypes))
		fmt.Fprintf(w, "  material: %d  uv channels: %d  color channels: %d  bones: %d\n",
			m.MaterialIndex, countChannels(m.TextureCoords), countChannels(m.Colors), len(m.Bones))
	}

	for i := range sc.Materials {
		m := &sc.Materials[i]
		fmt.Fprintf(w, "\nmaterial[%d] %q  (%d properties)\n", i, m.Name(), len(m.Properties))
		for _, kind := range []sys.AiTextureType{sys.TextureTypeDiffuse, sys.TextureTypeNormals, sys.TextureTypeBaseColor} {
			if path, ok := m.TexturePath(kind, 0); ok {
				fmt.Fprintf(w, "  texture (type %d): %s\n", kind, path)
			}
		}
	}

	for i := range sc.Animations {
		a := &sc.Animations[i]
		fmt.Fprintf(w, "\nanimation[%d] %q  duration: %.2f ticks @ %.2f/s  channels: %d\n",
			i, a.Name, a.Duration, a.TicksPerSecond, len(a.Channels))
	}
}

func countNodes(n *russimp.Node) int {
	count := 0
	n.Visit(func(*russimp.Node) bool {
		count++
		return true
	})
	return count
}

func countChannels[T any](channels [8][]T) int {
	n := 0
	for i := range channels {
		if channels[i] != nil {
			n++
		}
	}
	return n
}

func primitiveNames(p uint32) string {
	var parts []string
	if p&sys.PrimitiveTypePoint != 0 {
		parts = append(parts, "point")
	}
	if p&sys.PrimitiveTypeLine != 0 {
		parts = append(parts, "line")
	}
	if p&sys.PrimitiveTypeTriangle != 0 {
		parts = append(parts, "triangle")
	}
	if p&sys.PrimitiveTypePolygon != 0 {
		parts = append(parts, "polygon")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

func printTree(w io.Writer, n *russimp.Node, depth int) {
	name := n.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), name)
	if len(n.Meshes) > 0 {
		fmt.Fprintf(w, "  [%d meshes]", len(n.Meshes))
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		printTree(w, c, depth+1)
	}
}

func parseBG() render.Color {
	var r, g, b uint8 = 18, 18, 26
	fmt.Sscanf(*bgColor, "%d,%d,%d", &r, &g, &b)
	return render.RGB(r, g, b)
}

var modelColor = render.RGB(0, 255, 128)

// renderPNG draws a single angled wireframe frame without a terminal.
func renderPNG(sc *russimp.Scene, path string) error {
	const width, height = 960, 540
	fb := render.NewFramebuffer(width, height)
	fb.Clear(parseBG())

	cam := render.NewCamera()
	cam.SetAspect(float32(width) / float32(height))
	bounds := render.SceneBounds(sc)
	cam.Frame(bounds)
	cam.Orbit(0.6, 0.35)

	wf := render.NewWireframe(cam, fb)
	wf.DrawScene(sc, modelColor)
	return fb.SavePNG(path)
}

// SpinAxis animates one orbit rate with a spring pulling it back to rest,
// so drag and key impulses ease out instead of stopping dead.
type SpinAxis struct {
	Velocity  float64
	velAccel  float64
	velSpring harmonica.Spring
}

func NewSpinAxis(fps int) SpinAxis {
	// Frequency 4.0, damping 1.0: critically damped, no overshoot.
	return SpinAxis{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *SpinAxis) Update() {
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// SpinState holds the orbit rates for both camera angles.
type SpinState struct {
	Yaw   SpinAxis
	Pitch SpinAxis
	fps   int
}

func NewSpinState(fps int) *SpinState {
	return &SpinState{
		Yaw:   NewSpinAxis(fps),
		Pitch: NewSpinAxis(fps),
		fps:   fps,
	}
}

func (s *SpinState) Update() {
	s.Yaw.Update()
	s.Pitch.Update()
}

func (s *SpinState) ApplyImpulse(yaw, pitch float64) {
	s.Yaw.Velocity += yaw
	s.Pitch.Velocity += pitch
}

func (s *SpinState) Reset() {
	s.Yaw = NewSpinAxis(s.fps)
	s.Pitch = NewSpinAxis(s.fps)
}

// HUD overlays frame rate and model stats on the preview.
type HUD struct {
	filename  string
	meshes    int
	faces     int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD(filename string, meshes, faces int) *HUD {
	return &HUD{
		filename: filename,
		meshes:   meshes,
		faces:    faces,
		fpsTime:  time.Now(),
	}
}

// UpdateFPS advances the FPS counter; call once per frame.
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD with raw escape sequences on top of the frame.
func (h *HUD) Render(width, height int, grid, bounds bool) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.filename)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, h.filename, reset)

	statsCol := max(width-24, 1)
	fmt.Printf("%s%s%s %d meshes, %d faces %s", moveTo(1, statsCol), bgBlack, fgCyan, h.meshes, h.faces, reset)

	checkGrid := "[ ]"
	if grid {
		checkGrid = "[x]"
	}
	checkBounds := "[ ]"
	if bounds {
		checkBounds = "[x]"
	}
	fmt.Printf("%s%s%s %s Grid  %s Bounds %s", moveTo(height, 1), bgBlack, fgWhite, checkGrid, checkBounds, reset)

	hintCol := max(width-26, 1)
	fmt.Printf("%s%s%s drag orbit, wheel zoom %s", moveTo(height, hintCol), bgBlack, dim, reset)
}

func preview(sc *russimp.Scene, name string) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Any-event mouse tracking plus SGR extended coordinates.
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	fb := render.NewFramebuffer(width, height*2)
	cam := render.NewCamera()
	cam.SetAspect(float32(width) / float32(height*2))
	bounds := render.SceneBounds(sc)
	cam.Frame(bounds)
	wf := render.NewWireframe(cam, fb)

	ext := bounds.Size()
	gridSize := 2 * max(ext.X, max(ext.Y, ext.Z))
	if gridSize <= 0 {
		gridSize = 4
	}

	faces := 0
	for i := range sc.Meshes {
		faces += len(sc.Meshes[i].Faces)
	}
	hud := NewHUD(name, len(sc.Meshes), faces)

	spin := NewSpinState(*targetFPS)
	spin.ApplyImpulse(0.02, 0)

	showGrid := true
	showBounds := false
	showAxes := false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)
				wf = render.NewWireframe(cam, fb)
				cam.SetAspect(float32(width) / float32(height*2))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					cam.Azimuth = 0
					cam.Elevation = 0
					cam.Frame(bounds)
					spin.Reset()
				case ev.MatchString("w", "up"):
					spin.ApplyImpulse(0, 0.02)
				case ev.MatchString("s", "down"):
					spin.ApplyImpulse(0, -0.02)
				case ev.MatchString("a", "left"):
					spin.ApplyImpulse(-0.03, 0)
				case ev.MatchString("d", "right"):
					spin.ApplyImpulse(0.03, 0)
				case ev.MatchString("space"):
					spin.ApplyImpulse((rand.Float64()-0.5)*0.3, (rand.Float64()-0.5)*0.15)
				case ev.MatchString("+", "="):
					cam.Zoom(0.9)
				case ev.MatchString("-", "_"):
					cam.Zoom(1.1)
				case ev.MatchString("g"):
					showGrid = !showGrid
				case ev.MatchString("b"):
					showBounds = !showBounds
				case ev.MatchString("x"):
					showAxes = !showAxes
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					spin.ApplyImpulse(float64(dx)*0.01, float64(dy)*0.02)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cam.Zoom(0.9)
				case uv.MouseWheelDown:
					cam.Zoom(1.1)
				}
			}
		}
	}()

	bg := parseBG()
	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	var ident math32.Matrix4
	ident.SetIdentity()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		spin.Update()
		cam.Orbit(float32(spin.Yaw.Velocity), float32(spin.Pitch.Velocity))

		fb.Clear(bg)
		if showGrid {
			wf.DrawGrid(gridSize, gridSize/8, render.ColorDimGray)
		}
		if showAxes {
			wf.DrawAxes(gridSize / 2)
		}
		wf.DrawScene(sc, modelColor)
		if showBounds && !bounds.IsEmpty() {
			wf.DrawBox(bounds, &ident, render.ColorYellow)
		}

		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(width, height, showGrid, showBounds)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
