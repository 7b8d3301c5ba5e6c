package mathutil

// FlipZ converts between left-handed (engine) and right-handed (mathgl)
// coordinates: diag(1, 1, -1).
var FlipZ = Mat4Scale(Vec3{1, 1, -1})
