package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mbue/glint/glx"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 pos;
void main() {
    gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`

const fragmentShaderSource = `#version 330 core
out vec4 final_color;

void main() {
    final_color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

var triangleVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// one position attribute of three float32 components per vertex
const vertexStride = 3 * 4

// Scene owns the GPU objects for the one triangle this program draws.
type Scene struct {
	vao      *glx.VertexArray
	vbo      *glx.Buffer
	programs *glx.ProgramCache
}

// NewScene uploads the triangle geometry, declares its attribute layout
// and activates the shader program. Each step aborts the build on the
// first failure.
func NewScene(api glx.API) (*Scene, error) {
	vao, err := glx.NewVertexArray(api)
	if err != nil {
		return nil, err
	}

	vao.Bind()

	vbo, err := glx.NewBuffer(api)
	if err != nil {
		vao.Release()
		return nil, err
	}

	vbo.Bind(glx.ArrayBuffer)
	vbo.Data(glx.ArrayBuffer, glx.AsByteSlice(triangleVertices), glx.StaticDraw)

	api.VertexAttribPointer(0, 3, glx.Float, false, vertexStride, 0)
	api.EnableVertexAttribArray(0)

	programs := glx.NewProgramCache(api)

	program, err := programs.Get(glx.ProgramSources{
		Vertex:   vertexShaderSource,
		Fragment: fragmentShaderSource,
	})
	if err != nil {
		vbo.Release()
		vao.Release()
		return nil, err
	}

	program.Use()

	return &Scene{
		vao:      vao,
		vbo:      vbo,
		programs: programs,
	}, nil
}

// Draw clears the color buffer and issues the one triangle draw call.
func (s *Scene) Draw(api glx.API) {
	api.ClearColor(0.2, 0.3, 0.3, 1.0)
	api.Clear(glx.ColorBufferBit)
	api.DrawArrays(glx.Triangles, 0, 3)
}

func (s *Scene) Release() {
	s.programs.Release()
	s.vbo.Release()
	s.vao.Release()
}
