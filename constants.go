package displace

// Stencil layout
const (
	stencilCenter = 1   // Index of the centre row/column in the 3x3 stencil
	half          = 0.5 // Centre of a unit span or period
)

// Tent sampler
const (
	tentPeakScale = 4.0 // (½)·(½) peak of the raw pyramid, inverted
)

// Ridge sampler
const (
	ridgeSpine         = 0.45 // Folded v at or above which the crest plateau starts
	ridgeRampSlope     = 10.0 // Ramp reaches full height at folded v = 0.1
	ridgePlateauFactor = 2.0  // Plateau height as a multiple of the amplitude
)

// Default configuration, matching the renderer's initial settings
const (
	defaultAmplitude = 0.2
	defaultTessLevel = 4.0
	defaultTileSize  = 4.0
)

// Tessellation limits
const (
	minTessellationLevel = 1
	maxTessellationLevel = 64 // Hardware tessellators cap at 64
)
