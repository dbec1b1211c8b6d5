package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Merge concatenates the vertex buffers of parts and offsets each part's indices by the running
// vertex count, then recomputes normals over the result. It is a topological merge only:
// overlapping parts are not resolved into one surface, printability relies on the parts
// physically overlapping. Nil parts are skipped; parts must not be reused afterwards.
func Merge(parts ...*Mesh) *Mesh {
	var nv, ni int
	for _, p := range parts {
		if p == nil {
			continue
		}
		nv += p.VertexCount()
		ni += len(p.Indices)
	}
	out := New(nv, ni)
	for _, p := range parts {
		if p == nil {
			continue
		}
		base := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, p.Vertices...)
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, idx+base)
		}
	}
	out.ComputeNormals()
	return out
}

// ComputeNormals sets one normal per vertex: the normalized sum of the area-weighted normals of
// every triangle using that vertex. Vertices with no adjacent area get a zero normal.
func (m *Mesh) ComputeNormals() {
	n := m.VertexCount()
	acc := make([]r3.Vec, n)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		fn := faceNormal(m.vec(int(a)), m.vec(int(b)), m.vec(int(c)))
		acc[a] = r3.Add(acc[a], fn)
		acc[b] = r3.Add(acc[b], fn)
		acc[c] = r3.Add(acc[c], fn)
	}
	if cap(m.Normals) >= n*3 {
		m.Normals = m.Normals[:n*3]
	} else {
		m.Normals = make([]float32, n*3)
	}
	for i, v := range acc {
		l := r3.Norm(v)
		if l == 0 {
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2] = 0, 0, 0
			continue
		}
		m.Normals[i*3] = float32(v.X / l)
		m.Normals[i*3+1] = float32(v.Y / l)
		m.Normals[i*3+2] = float32(v.Z / l)
	}
}

// faceNormal returns the un-normalized normal of triangle abc; its length is twice the area.
func faceNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

func (m *Mesh) vec(i int) r3.Vec {
	return r3.Vec{
		X: float64(m.Vertices[i*3]),
		Y: float64(m.Vertices[i*3+1]),
		Z: float64(m.Vertices[i*3+2]),
	}
}
