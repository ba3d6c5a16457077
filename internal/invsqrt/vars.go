package invsqrt

import "runtime"

var (
	Debug   = false // set to true for verbose debug output
	PNG     = false // set to true to save PNG images instead of JPEG
	BMP     = false // set to true to save BMP images instead of JPEG
	RAW     = false // set to true to also save zstd-compressed raw pixel grids
	Report  = false // set to true to write the kernel accuracy report
	Workers = runtime.NumCPU()
)

var (
	UseISR  = false // set to true to normalize with the ISR kernel regardless of the config
	Animate = false // set to true to write one animated GIF instead of numbered images
)
