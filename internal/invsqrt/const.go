package invsqrt

// Defaults used when the JSON config leaves a field empty.
const (
	Size      = 128
	GIFDelay  = 6 // 100ths of a second per frame, 60 ms
	GIFLoop   = 0  // loop forever
	OutPrefix = "test"
	ImageExt  = ".jpg"
	RawExt    = ".raw.zst"
	// shading coefficients
	Ka = 0.05
	Kd = 0.6
	Ks = 0.2
	// offset added to the light's Z for the specular term
	specularLift = 0.5
	// fixed Z of the unnormalized central-difference normal
	normalZ = 2
	// accuracy report sampling
	ReportLo      = 1e-6
	ReportHi      = 1e10
	ReportSamples = 2000
)
