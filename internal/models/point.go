package models

// Point represents one named location on the sphere.
type Point struct {
	Name      string  // Name is a real place name or a generated label.
	Latitude  float64 // Latitude in degrees, [-90, 90].
	Longitude float64 // Longitude in degrees, [-180, 180].
}

// Valid reports whether the coordinates lie within geographic ranges.
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
