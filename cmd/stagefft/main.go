// Command stagefft runs a forward and inverse transform over a
// demonstration signal and prints the forward spectrum and the
// inverse-transformed signal.
package main

import (
	"fmt"

	"github.com/gookit/gcli/v2"

	"github.com/go-spectral/stagefft"
)

var opts struct {
	stage      uint
	radix      string
	decimation string
	window     string
	norm       string
}

var transformCmd = &gcli.Command{
	Name:    "transform",
	UseFor:  "run a forward and inverse FFT over a block sign pattern",
	Aliases: []string{"t"},
	Func:    runTransform,
}

func init() {
	transformCmd.UintOpt(&opts.stage, "stage", "s", 4, "stage exponent; N = 2^stage (4^stage for radix4)")
	transformCmd.StrOpt(&opts.radix, "radix", "r", "split", "kernel: radix2, radix4 or split")
	transformCmd.StrOpt(&opts.decimation, "decimation", "d", "time", "decimation: time or frequency")
	transformCmd.StrOpt(&opts.window, "window", "w", "none",
		"window: none, bartlett, blackman, blackmanharris, cosine, flattop, hamming, vonhann or welch")
	transformCmd.StrOpt(&opts.norm, "normalization", "n", "sqrt", "normalization: none, length or sqrt")
}

func main() {
	app := gcli.NewApp()
	app.Name = "stagefft"
	app.Version = "1.0.0"
	app.Description = "statically specialized FFT pipelines"

	app.Add(transformCmd)
	app.DefaultCommand("transform")
	app.Run()
}

func runTransform(cmd *gcli.Command, args []string) error {
	base, err := parseOptions()
	if err != nil {
		return err
	}

	forward, err := handle(base, stagefft.Forward)
	if err != nil {
		return err
	}
	inverse, err := handle(base, stagefft.Inverse)
	if err != nil {
		return err
	}

	data := signPattern(forward.SampleCount())
	gcli.Println("FFT:")
	forward.Apply(data)
	printBuffer(data)

	gcli.Println("IFFT:")
	inverse.Apply(data)
	printBuffer(data)
	return nil
}

func handle(base stagefft.Options, dir stagefft.Direction) (stagefft.Transform[float64], error) {
	base.Direction = dir
	factory, err := stagefft.NewFactory[float64](opts.stage, opts.stage+1, base)
	if err != nil {
		return nil, err
	}
	return factory.Get(opts.stage)
}

func parseOptions() (stagefft.Options, error) {
	var o stagefft.Options
	switch opts.radix {
	case "radix2":
		o.Radix = stagefft.Radix2
	case "radix4":
		o.Radix = stagefft.Radix4
	case "split":
		o.Radix = stagefft.RadixSplit24
	default:
		return o, fmt.Errorf("unknown radix %q", opts.radix)
	}
	switch opts.decimation {
	case "time":
		o.Decimation = stagefft.DecimationInTime
	case "frequency":
		o.Decimation = stagefft.DecimationInFrequency
	default:
		return o, fmt.Errorf("unknown decimation %q", opts.decimation)
	}
	windows := map[string]stagefft.Window{
		"none":           stagefft.WindowNone,
		"bartlett":       stagefft.WindowBartlett,
		"blackman":       stagefft.WindowBlackman,
		"blackmanharris": stagefft.WindowBlackmanHarris,
		"cosine":         stagefft.WindowCosine,
		"flattop":        stagefft.WindowFlatTop,
		"hamming":        stagefft.WindowHamming,
		"vonhann":        stagefft.WindowVonHann,
		"welch":          stagefft.WindowWelch,
	}
	w, ok := windows[opts.window]
	if !ok {
		return o, fmt.Errorf("unknown window %q", opts.window)
	}
	o.Window = w
	switch opts.norm {
	case "none":
		o.Normalization = stagefft.NormalizationNone
	case "length":
		o.Normalization = stagefft.NormalizationLength
	case "sqrt":
		o.Normalization = stagefft.NormalizationSquareRoot
	default:
		return o, fmt.Errorf("unknown normalization %q", opts.norm)
	}
	return o, nil
}

// signPattern fills a buffer with alternating blocks of -1 and +1, four
// samples per block: a square wave with a compact, readable spectrum.
func signPattern(n int) []stagefft.Complex[float64] {
	data := make([]stagefft.Complex[float64], n)
	for i := range data {
		if (i/4)%2 == 0 {
			data[i].Re = -1
		} else {
			data[i].Re = 1
		}
	}
	return data
}

func printBuffer(data []stagefft.Complex[float64]) {
	for _, c := range data {
		fmt.Printf("%10.5f\t%10.5fI\n", c.Re, c.Im)
	}
}
