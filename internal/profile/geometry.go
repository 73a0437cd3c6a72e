package profile

import (
	"math"
	"sort"
)

// Properties computes area, centroid and centroidal second moments of area
func (poly Polygon) Properties() Properties {
	props := Properties{}

	n := len(poly)
	if n < 3 {
		return props
	}

	props.MinY, props.MaxY = poly[0].Y, poly[0].Y
	for _, v := range poly {
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	// Shoelace sums for area, first and second moments about the origin
	var signedArea, sumX, sumY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		cross := xi*yj - xj*yi

		signedArea += cross
		sumX += (xi + xj) * cross
		sumY += (yi + yj) * cross
		sumXX += (xi*xi + xi*xj + xj*xj) * cross
		sumYY += (yi*yi + yi*yj + yj*yj) * cross
	}

	signedArea /= 2
	if signedArea == 0 {
		return props
	}

	props.Area = math.Abs(signedArea)
	props.CentroidX = sumX / (6 * signedArea)
	props.CentroidY = sumY / (6 * signedArea)

	// Parallel axis theorem back to the centroid; dividing by the signed area
	// makes the result independent of vertex orientation
	sign := signedArea / props.Area
	props.Ix = sign*sumYY/12 - props.Area*props.CentroidY*props.CentroidY
	props.Iy = sign*sumXX/12 - props.Area*props.CentroidX*props.CentroidX

	return props
}

// WidthAtY calculates the width of the section at a given Y coordinate
// Uses horizontal line intersection with the polygon
func (poly Polygon) WidthAtY(y float64) float64 {
	intersections := poly.findIntersectionsAtY(y)

	if len(intersections) < 2 {
		return 0
	}

	sort.Float64s(intersections)

	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon
func (poly Polygon) findIntersectionsAtY(y float64) []float64 {
	var intersections []float64
	n := len(poly)

	for i := 0; i < n; i++ {
		v1, v2 := poly[i], poly[(i+1)%n]

		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			intersections = append(intersections, v1.X+t*(v2.X-v1.X))
		}
	}

	return intersections
}

// PlasticModulus integrates |y - yp|·width(y) over the depth, where yp is the
// equal-area axis. Uses the midpoint rule with the given number of strips.
func (poly Polygon) PlasticModulus(steps int) float64 {
	props := poly.Properties()
	if props.Area == 0 || steps <= 0 {
		return 0
	}

	dy := (props.MaxY - props.MinY) / float64(steps)
	widths := make([]float64, steps)
	for i := range widths {
		widths[i] = poly.WidthAtY(props.MinY + (float64(i)+0.5)*dy)
	}

	// Equal-area axis
	half := props.Area / 2
	yp := props.MaxY
	var acc float64
	for i, w := range widths {
		if acc+w*dy >= half {
			yp = props.MinY + float64(i)*dy + (half-acc)/w
			break
		}
		acc += w * dy
	}

	var modulus float64
	for i, w := range widths {
		y := props.MinY + (float64(i)+0.5)*dy
		modulus += math.Abs(y-yp) * w * dy
	}

	return modulus
}
