package domain

import "go.trai.ch/zerr"

var (
	// ErrFileTooBig is returned by FileOps.ReadEntireFile when a file
	// exceeds the caller's supplied byte limit.
	ErrFileTooBig = zerr.New("file too big")

	// ErrNotImplemented is returned when BuildSource is asked to compile a
	// source file whose extension is not ".c".
	ErrNotImplemented = zerr.New("not implemented")

	// ErrToolNotFound is returned when a configured toolchain argv prefix
	// (compiler, linker, archiver) cannot be resolved on PATH.
	ErrToolNotFound = zerr.New("tool not found")
)
