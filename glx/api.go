package glx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// API is the slice of the OpenGL 3.3 core interface this module talks to.
// Load returns the real driver-backed implementation; tests substitute a
// recording fake so no GPU context is needed.
type API interface {
	// Version returns the driver's version string. Diagnostic only.
	Version() string

	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)

	GenBuffer() uint32
	BindBuffer(target uint32, id uint32)
	DeleteBuffer(id uint32)

	// BufferData copies data into the storage of the buffer currently
	// bound to target, replacing any previous contents.
	BufferData(target uint32, data []byte, usage uint32)

	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(stage uint32) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	ShaderParameter(id uint32, pname uint32) int32
	ShaderInfoLog(id uint32) string
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	ProgramParameter(id uint32, pname uint32) int32
	ProgramInfoLog(id uint32) string
	UseProgram(id uint32)
	DeleteProgram(id uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	Viewport(x, y, width, height int32)
}

// The enum values callers pass into the API. Values match the binding so
// the driver implementation can hand them through unchanged.
const (
	ArrayBuffer    = gl.ARRAY_BUFFER
	StaticDraw     = gl.STATIC_DRAW
	Float          = gl.FLOAT
	Triangles      = gl.TRIANGLES
	ColorBufferBit = gl.COLOR_BUFFER_BIT
	CompileStatus  = gl.COMPILE_STATUS
	LinkStatus     = gl.LINK_STATUS
	False          = gl.FALSE
)

// Load resolves the driver's function table. The rendering context must be
// current on the calling thread.
func Load() (API, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("load OpenGL function pointers: %w", err)
	}

	return driverAPI{}, nil
}

// driverAPI forwards to the loaded OpenGL function pointers.
type driverAPI struct{}

func (driverAPI) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (driverAPI) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (driverAPI) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (driverAPI) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (driverAPI) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (driverAPI) BindBuffer(target uint32, id uint32) {
	gl.BindBuffer(target, id)
}

func (driverAPI) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (driverAPI) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (driverAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (driverAPI) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (driverAPI) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (driverAPI) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (driverAPI) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (driverAPI) ShaderParameter(id uint32, pname uint32) int32 {
	var value int32
	gl.GetShaderiv(id, pname, &value)
	return value
}

func (driverAPI) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (driverAPI) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (driverAPI) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (driverAPI) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (driverAPI) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (driverAPI) ProgramParameter(id uint32, pname uint32) int32 {
	var value int32
	gl.GetProgramiv(id, pname, &value)
	return value
}

func (driverAPI) ProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (driverAPI) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (driverAPI) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (driverAPI) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (driverAPI) Clear(mask uint32) {
	gl.Clear(mask)
}

func (driverAPI) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (driverAPI) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
