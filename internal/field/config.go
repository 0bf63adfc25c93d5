package field

// Reference resolution for the areal particle density.
const (
	ReferenceWidth  = 1920
	ReferenceHeight = 1080
)

// Defaults for Params.
const (
	BaseParticleCount = 10000
	AlphaThreshold    = 128

	RepelRadius   = 400.0
	RepelStrength = 2.0
	RelaxRate     = 0.1

	MobileBreakpoint  = 768
	LogoHeightDesktop = 120.0
	LogoHeightMobile  = 60.0
	LogoScaleFactor   = 2.5

	ParticleSizeMin = 0.5
	ParticleSizeMax = 1.5
	ParticleLifeMin = 50
	ParticleLifeMax = 150
)

// Params holds the tunables of a Field. Zero values are not meaningful;
// start from DefaultParams.
type Params struct {
	BaseCount       int
	ReferenceWidth  int
	ReferenceHeight int
	AlphaThreshold  uint8

	RepelRadius   float64
	RepelStrength float64
	RelaxRate     float64

	MobileBreakpoint  int
	LogoHeightDesktop float64
	LogoHeightMobile  float64
	LogoScaleFactor   float64

	SizeMin, SizeMax float64
	LifeMin, LifeMax int

	Idle      RGB
	Scattered RGB
}

func DefaultParams() Params {
	return Params{
		BaseCount:         BaseParticleCount,
		ReferenceWidth:    ReferenceWidth,
		ReferenceHeight:   ReferenceHeight,
		AlphaThreshold:    AlphaThreshold,
		RepelRadius:       RepelRadius,
		RepelStrength:     RepelStrength,
		RelaxRate:         RelaxRate,
		MobileBreakpoint:  MobileBreakpoint,
		LogoHeightDesktop: LogoHeightDesktop,
		LogoHeightMobile:  LogoHeightMobile,
		LogoScaleFactor:   LogoScaleFactor,
		SizeMin:           ParticleSizeMin,
		SizeMax:           ParticleSizeMax,
		LifeMin:           ParticleLifeMin,
		LifeMax:           ParticleLifeMax,
		Idle:              Palette.Idle,
		Scattered:         Palette.Scattered,
	}
}
