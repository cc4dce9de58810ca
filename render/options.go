package render

// Projection and pacing constants shared by the pipeline
const (
	// CameraDistance translates rotated points in front of the camera
	CameraDistance = 25.0

	// TargetFPS is the default frame rate cap
	TargetFPS = 30

	// ScreenPadding is the fraction of the screen auto-zoom fills
	ScreenPadding = 0.85
)

// Options carries the immutable per-run rendering configuration.
// Validated by the config package before a Renderer is built.
type Options struct {
	// Animation, radians advanced per frame
	SpeedA float64 // pitch
	SpeedB float64 // yaw

	// Character geometry in world units
	Width   float64
	Height  float64
	Spacing float64 // character advance as a multiple of Width
	Tilt    float64 // shear factor for the italic effect
	Zoom    float64 // manual zoom, <= 0 selects auto-zoom

	// Segment shape
	SegWidth  float64
	SegThick  float64
	PointLen  float64
	Density   float64 // sampling step, smaller is denser

	// Shading
	LightX   float64
	LightY   float64
	Contrast float64
	Palette  string // darkest to brightest
}
