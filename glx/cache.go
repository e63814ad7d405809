package glx

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ProgramSources identifies a program by its stage sources.
type ProgramSources struct {
	Vertex   string
	Fragment string
}

// ProgramCache caches linked programs by their sources, so requesting the
// same pair again skips the compile and link round trip. Evicted programs
// are released.
type ProgramCache struct {
	api   API
	cache *lru.Cache[ProgramSources, *Program]
}

func NewProgramCache(api API) *ProgramCache {
	cache, _ := lru.NewWithEvict[ProgramSources, *Program](16, releaseProgramOnEviction)

	return &ProgramCache{
		api:   api,
		cache: cache,
	}
}

func (pc *ProgramCache) Get(sources ProgramSources) (*Program, error) {
	program, ok := pc.cache.Get(sources)
	if ok {
		return program, nil
	}

	program, err := BuildProgram(pc.api, sources.Vertex, sources.Fragment)
	if err != nil {
		return nil, err
	}

	pc.cache.Add(sources, program)

	return program, nil
}

// Release evicts and releases all cached programs.
func (pc *ProgramCache) Release() {
	pc.cache.Purge()
}

func releaseProgramOnEviction(_ ProgramSources, program *Program) {
	slog.Debug("Releasing evicted program")
	program.Release()
}
