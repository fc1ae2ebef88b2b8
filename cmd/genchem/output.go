package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// outputFlags are the rendering flags shared by generate and load.
type outputFlags struct {
	format      string
	temperature float64
	color       string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", "output format: text, json, yaml or chemsim")
	cmd.Flags().Float64VarP(&f.temperature, "temperature", "T", genchem.DefaultTemperature, "temperature in kelvin for reaction probabilities")
	cmd.Flags().StringVar(&f.color, "color", "auto", "colour species names: auto, always or never")
}

func (f *outputFlags) options(w io.Writer) (render.Options, error) {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return render.Options{}, err
	}
	if f.temperature <= 0 {
		return render.Options{}, fmt.Errorf("%w: temperature must be positive, got %v", genchem.ErrInvalidArgument, f.temperature)
	}
	color, err := useColor(f.color, w)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Format:    format,
		Color:     color,
		ShowSeed:  true,
		Estimator: genchem.Estimator{GasConstant: genchem.GasConstant, Temperature: f.temperature},
	}, nil
}

func (f *outputFlags) write(w io.Writer, chem *genchem.Chemistry) error {
	opts, err := f.options(w)
	if err != nil {
		return err
	}
	return render.Write(w, chem, opts)
}

// useColor resolves a --color mode. auto colours only terminals and honours
// NO_COLOR.
func useColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("%w: unknown colour mode %q", genchem.ErrInvalidArgument, mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
