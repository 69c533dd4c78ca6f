package graphics

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SquareVertices tiles a unit square centered at the origin with two triangles
var SquareVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0},
	{0.5, 0.5, 0}, {-0.5, 0.5, 0}, {-0.5, -0.5, 0},
}

const float32Size = 4

// AttribLayout describes how one vertex attribute is sourced from the bound array buffer
type AttribLayout struct {
	Index      uint32
	Components int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

// PositionLayout is a tightly packed vec3 position at attribute 0
var PositionLayout = AttribLayout{
	Index:      0,
	Components: 3,
	Type:       gl.FLOAT,
	Normalized: false,
	Stride:     3 * float32Size,
	Offset:     0,
}

// VertexBytes packs positions as consecutive little-endian float32 triples
func VertexBytes(vertices []mgl32.Vec3) []byte {
	out := make([]byte, 0, len(vertices)*3*float32Size)
	for _, v := range vertices {
		for _, c := range v {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(c))
		}
	}
	return out
}

// VertexBuffer is a GPU buffer holding static vertex data
type VertexBuffer struct {
	ID   uint32
	Size int
}

// NewVertexBuffer allocates a buffer name without binding it
func NewVertexBuffer() *VertexBuffer {
	b := &VertexBuffer{}
	gl.GenBuffers(1, &b.ID)
	return b
}

// Bind makes the buffer the current array buffer
func (b *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ID)
}

// Upload copies data into the currently bound array buffer with the static draw hint
func (b *VertexBuffer) Upload(data []byte) {
	b.Size = len(data)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *VertexBuffer) Delete() {
	if b == nil || b.ID == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.ID)
	b.ID = 0
}

// VertexArray records attribute configuration and buffer bindings
type VertexArray struct {
	ID uint32
}

func NewVertexArray() *VertexArray {
	a := &VertexArray{}
	gl.GenVertexArrays(1, &a.ID)
	return a
}

func (a *VertexArray) Bind() {
	gl.BindVertexArray(a.ID)
}

// Layout declares and enables an attribute sourced from the bound array buffer
func (a *VertexArray) Layout(l AttribLayout) {
	gl.VertexAttribPointer(l.Index, l.Components, l.Type, l.Normalized, l.Stride, gl.PtrOffset(l.Offset))
	gl.EnableVertexAttribArray(l.Index)
}

func (a *VertexArray) Delete() {
	if a == nil || a.ID == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &a.ID)
	a.ID = 0
}

// Geometry pairs a vertex buffer with the vertex array that describes it
type Geometry struct {
	VAO   *VertexArray
	VBO   *VertexBuffer
	Count int32
}

// NewGeometry uploads vertices and records their layout.
// Both bindings are cleared afterwards so later calls cannot modify this vertex array.
func NewGeometry(vertices []mgl32.Vec3, layout AttribLayout) *Geometry {
	vao := NewVertexArray()
	vbo := NewVertexBuffer()

	vao.Bind()
	vbo.Bind()
	vbo.Upload(VertexBytes(vertices))
	vao.Layout(layout)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return &Geometry{VAO: vao, VBO: vbo, Count: int32(len(vertices))}
}

// Draw binds the vertex array and draws every vertex as triangles
func (g *Geometry) Draw() {
	g.VAO.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, g.Count)
}

// Delete releases the vertex array and then the buffer
func (g *Geometry) Delete() {
	if g == nil {
		return
	}
	g.VAO.Delete()
	g.VBO.Delete()
}
