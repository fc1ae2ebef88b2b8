package genchem_test

import (
	"fmt"

	"github.com/daniacca/genchem/internal/genchem"
)

func ExampleEnumerate() {
	vectors, err := genchem.Enumerate(2, 2)
	if err != nil {
		panic(err)
	}
	for _, v := range vectors {
		fmt.Println(v)
	}
	// Output:
	// [0 1]
	// [0 2]
	// [1 0]
	// [1 1]
	// [2 0]
}

func ExampleBuild() {
	mass := []float64{1, 2, 3}
	freeEnergy := []float64{0, 10, -5}

	set, err := genchem.Build(mass, freeEnergy, 2)
	if err != nil {
		panic(err)
	}
	for _, r := range set {
		fmt.Printf("%v -> %v ΔG=%g\n", r.Reactants, r.Products, r.DeltaG)
	}
	// Output:
	// [0 0 1] -> [1 1 0] ΔG=15
	// [0 1 0] -> [2 0 0] ΔG=-10
	// [0 2 0] -> [1 0 1] ΔG=-25
	// [1 0 1] -> [0 2 0] ΔG=25
	// [1 1 0] -> [0 0 1] ΔG=-15
	// [2 0 0] -> [0 1 0] ΔG=10
}

func ExampleWithCharge() {
	mass := []float64{1, 1, 2}
	charge := []int{1, -1, 0}
	freeEnergy := []float64{3, 3, 1}

	set, err := genchem.Build(mass, freeEnergy, 2, genchem.WithCharge(charge))
	if err != nil {
		panic(err)
	}
	for _, r := range set {
		fmt.Printf("%v -> %v ΔG=%g\n", r.Reactants, r.Products, r.DeltaG)
	}
	// Output:
	// [0 0 1] -> [1 1 0] ΔG=5
	// [1 1 0] -> [0 0 1] ΔG=-5
}

func ExampleProbability() {
	for _, dG := range []float64{-15, 0, 1000} {
		p, err := genchem.Probability(dG, genchem.GasConstant, genchem.DefaultTemperature)
		if err != nil {
			panic(err)
		}
		fmt.Printf("ΔG=%g p=%.4f\n", dG, p)
	}
	// Output:
	// ΔG=-15 p=1.0000
	// ΔG=0 p=1.0000
	// ΔG=1000 p=0.6680
}
