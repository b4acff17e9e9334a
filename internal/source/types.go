package source

// FileID identifies one compilation-unit source file inside the analyzed
// program. The zero value means "no file".
type FileID uint32

// NoFileID is the absent-file sentinel.
const NoFileID FileID = 0

// IsValid reports whether the ID refers to a real file.
func (id FileID) IsValid() bool { return id != NoFileID }
