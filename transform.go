package trellis

import "github.com/go-gl/mathgl/mgl64"

// LocalMatrix computes the node's local transform from its properties.
//
// Composition order:
//
//	Scale -> Rotate(Z) -> Rotate(Y) -> Rotate(X) -> Translate(Position)
//
// which is the XYZ Euler convention: the matrix is Rx * Ry * Rz.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.Rotation != (mgl64.Vec3{}) {
		rot := mgl64.HomogRotate3DX(n.Rotation[0]).
			Mul4(mgl64.HomogRotate3DY(n.Rotation[1])).
			Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
		m = m.Mul4(rot)
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		m = m.Mul4(mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
	}
	return m
}

// WorldMatrix composes the local matrices of n and all its ancestors.
// Computed on demand; nothing is cached between calls.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// transformPoint applies a homogeneous matrix to a point.
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// LocalToWorld converts a point in n's local space to world space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(n.WorldMatrix(), p)
}

// WorldToLocal converts a world-space point to n's local space.
// Returns p unchanged if the world matrix is singular (zero scale).
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	m := n.WorldMatrix()
	if det := m.Det(); det > -1e-12 && det < 1e-12 {
		return p
	}
	return transformPoint(m.Inv(), p)
}
