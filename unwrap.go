package main

// UnwrapLongitudes - rewrite a longitude sequence so consecutive values
// differ by less than 180 degrees, removing the artificial ±360 jump a
// ring straddling the antimeridian would otherwise contain.
// The first element is preserved exactly so no net offset is introduced.
func UnwrapLongitudes(lons []float64) []float64 {
	unwrapped := make([]float64, len(lons))
	if len(lons) == 0 {
		return unwrapped
	}

	unwrapped[0] = lons[0]
	for i := 1; i < len(lons); i++ {
		d := lons[i] - lons[i-1]
		if d > 180 {
			d -= 360
		} else if d < -180 {
			d += 360
		}
		unwrapped[i] = unwrapped[i-1] + d
	}

	return unwrapped
}
