package source

// FileID is the index of a file in its FileSet.
type FileID uint32

// FileFlags records how a file entered the set and what loading changed.
type FileFlags uint8

const (
	// FileVirtual marks content that did not come from disk: stdin or an
	// in-memory extract input.
	FileVirtual        FileFlags = 1 << iota
	FileHadBOM                   // BOM снят при загрузке
	FileNormalizedCRLF           // CRLF заменены на LF
)

// Has reports whether every flag in mask is set.
func (f FileFlags) Has(mask FileFlags) bool { return f&mask == mask }

// File is one loaded source. Spans, descriptor locations and cached
// extraction results all refer to Content after BOM and CRLF normalisation.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the offset of every '\n' in Content.
	LineIdx []uint32
	// Hash is the SHA-256 of Content; the extraction cache is keyed by it.
	Hash  [32]byte
	Flags FileFlags
}

// Virtual reports whether the file was added from memory.
func (f *File) Virtual() bool { return f.Flags.Has(FileVirtual) }

// LineCol is a 1-based position; columns count bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
