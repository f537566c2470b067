package mathx

import "math"

// AngleForLine returns the heading in degrees of the line from (x1,y1) to
// (x2,y2). 180 points straight down the screen, 0 and 360 straight up.
func AngleForLine(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(x2-x1, y2-y1)*180/math.Pi + 180
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	vx := x2 - x1
	vy := y2 - y1
	return math.Sqrt(vx*vx + vy*vy)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading converts an AngleForLine heading and a speed into a velocity.
func Heading(deg, speed float64) Vec2f {
	rad := DegToRad(deg - 180)
	return Vec2f{X: math.Sin(rad) * speed, Y: math.Cos(rad) * speed}
}
