package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/uuid"

	"github.com/lukaszgryglicki/invsqrt/internal/invsqrt"
)

func main() {
	invsqrt.Debug = os.Getenv("DEBUG") != ""
	invsqrt.UseISR = os.Getenv("ISR") != ""
	invsqrt.Animate = os.Getenv("GIF") != ""
	invsqrt.PNG = os.Getenv("PNG") != ""
	invsqrt.BMP = os.Getenv("BMP") != ""
	invsqrt.RAW = os.Getenv("RAW") != ""
	invsqrt.Report = os.Getenv("REPORT") != ""
	invsqrt.SetLogger(invsqrt.NewLogger(invsqrt.Debug).With("run", uuid.NewString()))

	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// no argument: built-in defaults
	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := invsqrt.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
