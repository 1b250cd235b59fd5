//////////////////////////////////////////////////////////////////
//
// Copyright (c) 2026 the awdata/sqlite authors.
// All rights reserved.
//
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
//
//////////////////////////////////////////////////////////////////

// Package sqlite is a Go wrapper for the prepared-statement binding
// surface of the SQLite C library.
//
// This wrapper uses 'cgo' to interface between Go and the SQLite engine
// written in C. cgo cannot express the SQLITE_TRANSIENT sentinel
// ((sqlite3_destructor_type)-1) as a function-pointer argument, so text
// and blob binds go through small C helpers in the preamble that supply
// the sentinel from C. Every bind exported by this package therefore
// requests that SQLite copy the caller's bytes before the call returns;
// the caller's buffer carries no obligation afterwards.
package sqlite

// #cgo pkg-config: sqlite3
// #include <sqlite3.h>
import "C"

// WrapperRelease - (string) The Go wrapper release version for the SQLite binding surface.
const WrapperRelease string = "v0.2.0"

// MinimumSQLiteRelease - (string) Minimum SQLite release required by this wrapper.
// sqlite3_open_v2 and sqlite3_errstr both predate it by several years.
const MinimumSQLiteRelease string = "3.24.0"

// MinimumGoRelease - (string) Minimum version of Go to fully support this wrapper (including tests)
const MinimumGoRelease string = "go1.24"

// Version reports the release string of the linked SQLite engine.
func Version() string {
	return C.GoString(C.sqlite3_libversion())
}
