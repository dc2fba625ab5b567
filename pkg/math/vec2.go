package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Array returns the vector packed as a vertex attribute.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Cross returns the z component of the 3D cross product of v and other.
// Its sign tells the winding of the pair; zero means they are parallel.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}
