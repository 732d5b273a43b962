package pathpos_test

import (
	"fmt"

	"honnef.co/go/pathpos"
)

func ExamplePositioner_Place() {
	p, err := pathpos.ParseSVGPath("M 0 0 L 100 0 L 100 100")
	if err != nil {
		panic(err)
	}
	vb, err := pathpos.ParseViewBox("0 0 200 100")
	if err != nil {
		panic(err)
	}
	ps, err := pathpos.NewPositioner(p, vb, pathpos.DefaultTolerance)
	if err != nil {
		panic(err)
	}

	markers := []pathpos.Marker{
		{ID: "quarter", Progress: 0.25},
		{ID: "three quarters", Progress: 0.75},
		{ID: "past the end", Progress: 1.5},
	}
	for _, pm := range ps.Place(markers) {
		left, top := pm.Percent.CSS(1)
		fmt.Printf("%s: %s left=%s top=%s\n", pm.ID, pm.Point, left, top)
	}

	// Output:
	// quarter: (50, 0) left=25.0% top=0.0%
	// three quarters: (100, 50) left=50.0% top=50.0%
	// past the end: (100, 100) left=50.0% top=100.0%
}

func ExampleFlatten() {
	p := pathpos.MustParseSVGPath("M 0 0 C 0 100, 100 100, 100 0")
	pl := pathpos.Flatten(p, 1)
	fmt.Printf("%.1f\n", pl.PointAt(0.5))
	fmt.Println(pl.PointAt(0), pl.PointAt(1))

	// Output:
	// {50.0 75.0}
	// (0, 0) (100, 0)
}
