package collision

import "github.com/automoto/collide/shared/gamemath"

// IsProjectedPointInsideIndoorFace reports whether p, projected onto the
// face's dominant plane, lies inside the polygon or on its boundary.
func IsProjectedPointInsideIndoorFace(face *Face, p gamemath.Vec3) bool {
	if face == nil {
		return false
	}
	return insideProjected(indoorPolygon{face}, p)
}

// IsProjectedPointInsideOutdoorFace is the outdoor model variant.
func IsProjectedPointInsideOutdoorFace(model *Model, face *ModelFace, p gamemath.Vec3) bool {
	if model == nil || face == nil {
		return false
	}
	return insideProjected(newOutdoorPolygon(model, face), p)
}

// insideProjected is a crossing-number test. Degenerate polygons contain
// nothing; points on an edge are inside.
func insideProjected(poly polygon, p gamemath.Vec3) bool {
	n := poly.count()
	if n < 3 {
		return false
	}
	ax := poly.axis()
	u, v := ax.project(p)

	var area int64
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ui, vi := ax.project(poly.vertex(i))
		uj, vj := ax.project(poly.vertex(j))
		area += uj*vi - ui*vj
	}
	if area == 0 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ui, vi := ax.project(poly.vertex(i))
		uj, vj := ax.project(poly.vertex(j))

		if onSegment(u, v, ui, vi, uj, vj) {
			return true
		}
		if (vi > v) == (vj > v) {
			continue
		}
		// u < ui + (v-vi)*(uj-ui)/(vj-vi), kept in integers
		lhs := (u - ui) * (vj - vi)
		rhs := (uj - ui) * (v - vi)
		if vj > vi {
			if lhs < rhs {
				inside = !inside
			}
		} else if lhs > rhs {
			inside = !inside
		}
	}
	return inside
}

func onSegment(u, v, ui, vi, uj, vj int64) bool {
	if (uj-ui)*(v-vi) != (vj-vi)*(u-ui) {
		return false
	}
	return u >= min(ui, uj) && u <= max(ui, uj) && v >= min(vi, vj) && v <= max(vi, vj)
}
