package viewport

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	glbMagic      = 0x46546C67 // "glTF"
	glbVersion    = 2
	glbHeaderSize = 12
	chunkJSON     = 0x4E4F534A
	chunkBIN      = 0x004E4942
)

// ErrNotGLB is returned for payloads that are not glTF 2.0 binaries.
var ErrNotGLB = errors.New("not a glTF binary")

// Info summarizes a glTF binary.
type Info struct {
	Version   string
	Generator string
	Meshes    int
	Nodes     int
	HasBinary bool
}

// InspectGLB validates the container header and reads the summary fields
// from the JSON chunk.
func InspectGLB(data []byte) (Info, error) {
	if len(data) < glbHeaderSize {
		return Info{}, fmt.Errorf("%w: %d bytes", ErrNotGLB, len(data))
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return Info{}, fmt.Errorf("%w: bad magic", ErrNotGLB)
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != glbVersion {
		return Info{}, fmt.Errorf("%w: unsupported version %d", ErrNotGLB, v)
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	if int(total) != len(data) {
		return Info{}, fmt.Errorf("%w: header length %d, got %d bytes", ErrNotGLB, total, len(data))
	}

	var info Info
	var jsonChunk []byte
	off := glbHeaderSize
	for off+8 <= len(data) {
		size := int(binary.LittleEndian.Uint32(data[off : off+4]))
		kind := binary.LittleEndian.Uint32(data[off+4 : off+8])
		start := off + 8
		if size < 0 || start+size > len(data) {
			return Info{}, fmt.Errorf("%w: chunk at %d overruns payload", ErrNotGLB, off)
		}
		switch {
		case off == glbHeaderSize && kind != chunkJSON:
			return Info{}, fmt.Errorf("%w: first chunk is not JSON", ErrNotGLB)
		case kind == chunkJSON:
			jsonChunk = data[start : start+size]
		case kind == chunkBIN:
			info.HasBinary = true
		}
		off = start + size
	}
	if jsonChunk == nil {
		return Info{}, fmt.Errorf("%w: missing JSON chunk", ErrNotGLB)
	}
	if !gjson.ValidBytes(jsonChunk) {
		return Info{}, fmt.Errorf("%w: JSON chunk is malformed", ErrNotGLB)
	}

	info.Version = gjson.GetBytes(jsonChunk, "asset.version").String()
	info.Generator = gjson.GetBytes(jsonChunk, "asset.generator").String()
	info.Meshes = int(gjson.GetBytes(jsonChunk, "meshes.#").Int())
	info.Nodes = int(gjson.GetBytes(jsonChunk, "nodes.#").Int())
	if info.Version == "" {
		return Info{}, fmt.Errorf("%w: missing asset.version", ErrNotGLB)
	}
	return info, nil
}
