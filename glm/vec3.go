package glm

// Vec3 is a vertex attribute, math on 3d vectors is done with mgl32.
type Vec3[T numeric] [3]T
