package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// GEDCOM lexing and parsing errors
	MalformedLineError
	StructuralError

	// Graph resolution errors
	DanglingReferenceError
	DuplicateRecordError

	// Places errors
	PlacesConfigError

	// Biography errors
	AmbiguousBiographyMatchError
	BiographyReadError

	// Emitter errors
	WriteError

	// Build errors
	BuildSourceNotFoundError
	BuildCancelledError
	BuildWatchError
)
