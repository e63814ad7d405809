package glx

import (
	"fmt"
	"slices"
	"strings"
)

// Recorder is an in-memory API implementation. It hands out fake handles,
// records every call in order and can be scripted to fail creation,
// compilation or linking. It stands in for the driver where no rendering
// context exists, most importantly in tests.
type Recorder struct {
	// Calls is the ordered trace of every call made against the API.
	Calls []string

	// NullHandles makes every create/gen call return the null handle.
	NullHandles bool

	// CompileFailures maps shader source text to the compile log the
	// fake driver reports for it. Sources not present compile fine.
	CompileFailures map[string]string

	// LinkFailure, when non-empty, makes every link fail with this log.
	LinkFailure string

	nextID        uint32
	shaderSources map[uint32]string
	shaderLogs    map[uint32]string
	programLogs   map[uint32]string
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) allocate() uint32 {
	if r.NullHandles {
		return 0
	}

	r.nextID++
	return r.nextID
}

// Count returns how many recorded calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	var n int
	for _, call := range r.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}

	return n
}

// Has reports whether the exact call was recorded.
func (r *Recorder) Has(call string) bool {
	return slices.Contains(r.Calls, call)
}

func (r *Recorder) Version() string {
	return "3.3.0 recorder"
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.allocate()
	r.record("GenVertexArray() = %d", id)
	return id
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray(%d)", id)
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray(%d)", id)
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.allocate()
	r.record("GenBuffer() = %d", id)
	return id
}

func (r *Recorder) BindBuffer(target uint32, id uint32) {
	r.record("BindBuffer(%d, %d)", target, id)
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.record("DeleteBuffer(%d)", id)
}

func (r *Recorder) BufferData(target uint32, data []byte, usage uint32) {
	r.record("BufferData(%d, %d bytes, %d)", target, len(data), usage)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer(%d, %d, %d, %t, %d, %d)", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray(%d)", index)
}

func (r *Recorder) CreateShader(stage uint32) uint32 {
	id := r.allocate()
	r.record("CreateShader(%d) = %d", stage, id)
	return id
}

func (r *Recorder) ShaderSource(id uint32, source string) {
	if r.shaderSources == nil {
		r.shaderSources = map[uint32]string{}
	}

	r.shaderSources[id] = source
	r.record("ShaderSource(%d)", id)
}

func (r *Recorder) CompileShader(id uint32) {
	if r.shaderLogs == nil {
		r.shaderLogs = map[uint32]string{}
	}

	r.shaderLogs[id] = r.CompileFailures[r.shaderSources[id]]
	r.record("CompileShader(%d)", id)
}

func (r *Recorder) ShaderParameter(id uint32, pname uint32) int32 {
	if pname == CompileStatus && r.shaderLogs[id] != "" {
		return False
	}

	return 1
}

func (r *Recorder) ShaderInfoLog(id uint32) string {
	return r.shaderLogs[id]
}

func (r *Recorder) DeleteShader(id uint32) {
	r.record("DeleteShader(%d)", id)
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.allocate()
	r.record("CreateProgram() = %d", id)
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader(%d, %d)", program, shader)
}

func (r *Recorder) LinkProgram(id uint32) {
	if r.programLogs == nil {
		r.programLogs = map[uint32]string{}
	}

	r.programLogs[id] = r.LinkFailure
	r.record("LinkProgram(%d)", id)
}

func (r *Recorder) ProgramParameter(id uint32, pname uint32) int32 {
	if pname == LinkStatus && r.programLogs[id] != "" {
		return False
	}

	return 1
}

func (r *Recorder) ProgramInfoLog(id uint32) string {
	return r.programLogs[id]
}

func (r *Recorder) UseProgram(id uint32) {
	r.record("UseProgram(%d)", id)
}

func (r *Recorder) DeleteProgram(id uint32) {
	r.record("DeleteProgram(%d)", id)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear(%d)", mask)
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays(%d, %d, %d)", mode, first, count)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}
