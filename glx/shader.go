package glx

import "github.com/go-gl/gl/v3.3-core/gl"

// Stage identifies one compilable unit of the rendering pipeline.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Shader owns one compiled shader object. A Shader only exists after a
// successful compile, failure surfaces as a CompileError instead.
type Shader struct {
	api   API
	id    uint32
	stage Stage
}

// NewShader compiles source for the given stage. On failure the driver's
// compile log is returned as a *CompileError and no shader object is
// left behind.
func NewShader(api API, stage Stage, source string) (*Shader, error) {
	id := api.CreateShader(uint32(stage))
	if id == 0 {
		return nil, &CreateError{Resource: stage.String() + " shader"}
	}

	api.ShaderSource(id, source)
	api.CompileShader(id)

	if api.ShaderParameter(id, CompileStatus) == False {
		log := api.ShaderInfoLog(id)
		api.DeleteShader(id)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	return registerWithGC(&Shader{api: api, id: id, stage: stage}), nil
}

func (s *Shader) Stage() Stage {
	return s.stage
}

// Release deletes the shader. Safe once the program is linked, the
// program keeps the compiled code. Calling it twice is a no-op.
func (s *Shader) Release() {
	if s.id == 0 {
		return
	}

	s.api.DeleteShader(s.id)
	s.id = 0
}

func (s *Shader) isReleased() bool {
	return s.id == 0
}
