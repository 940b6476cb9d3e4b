package advanced

type Point struct {
	X float64
	Y float64
}

type PointType int

const (
	// An actual vertex of the polygon outline.
	Normal PointType = iota
	// A quadratic bezier control point. It is never part of the rendered outline
	// itself.
	Control
)

func (pt PointType) String() string {
	switch pt {
	case Normal:
		return "Normal"
	case Control:
		return "Control"
	}
	return "PointType(?)"
}

type PointData struct {
	Position Point
	Type     PointType
}

// Identifies a point in a VertexStore. Loops only ever refer to points through
// these, so the same point data can be shared by several loops.
type VertexID int

type VertexStore interface {
	PointData(id VertexID) PointData
}

// The simplest vertex store: the id is the index into the list.
type VertexList []PointData

func (list VertexList) PointData(id VertexID) PointData {
	if id < 0 || int(id) >= len(list) {
		fatalf(ErrMalformedLoop, "unknown vertex %d (store has %d)", id, len(list))
	}
	return list[id]
}

// Adds a point and returns its id.
func (list *VertexList) Add(position Point, pointType PointType) VertexID {
	*list = append(*list, PointData{position, pointType})
	return VertexID(len(*list) - 1)
}

// Ids for every point in the list, in order.
func (list VertexList) IDs() []VertexID {
	ids := make([]VertexID, len(list))
	for i := range list {
		ids[i] = VertexID(i)
	}
	return ids
}

// The start, control and end point of one quadratic bezier arc, in loop order.
type QuadraticBezier struct {
	From, Ctrl, To Point
}

type Triangle struct {
	A, B, C Point
}
