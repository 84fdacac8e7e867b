package gridconv_test

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/gridconv"
)

func ExampleLatLonToUTMWGS84() {
	c, _ := gridconv.LatLonToUTMWGS84(52.2297, 21.0122)
	fmt.Println(c)
	// Output: 34U 500833.24 5786586.67
}

func ExampleUTMToLatLonWGS84() {
	lat, lon, _ := gridconv.UTMToLatLonWGS84(gridconv.UTMCoord{Zone: 32, Band: 'N', Easting: 500000, Northing: 0})
	fmt.Printf("%.6f %.6f\n", lat, lon)
	// Output: 0.000000 9.000000
}

func ExampleLatLonToPUWGWGS84() {
	c, _ := gridconv.LatLonToPUWGWGS84(52.2297, 21.0122, gridconv.PL2000)
	fmt.Printf("%s %.2f %.2f\n", c.Projection, c.Easting, c.Northing)
	// Output: PUWG 2000 7500833.51 5788456.49
}

func ExamplePUWG_ConvertFromGeodetic() {
	c, _ := gridconv.DefaultPUWG1992Converter.ConvertFromGeodetic(s2.LatLngFromDegrees(52.2297, 21.0122))
	fmt.Printf("%.2f %.2f\n", c.Easting, c.Northing)
	// Output: 637382.20 486757.21
}
