//////////////////////////////////////////////////////////////////
//
// Copyright (c) 2026 the awdata/sqlite authors.
// All rights reserved.
//
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
//
//////////////////////////////////////////////////////////////////

package sqlite

// #cgo pkg-config: sqlite3
// #include <sqlite3.h>
import "C"

// Result codes of interest, passed through unmodified from the engine's
// own taxonomy. See https://www.sqlite.org/rescode.html for the rest.
const (
	ResultOK     = C.SQLITE_OK
	ResultError  = C.SQLITE_ERROR
	ResultRange  = C.SQLITE_RANGE
	ResultMisuse = C.SQLITE_MISUSE
)

// Error is a structure that defines the error message format which includes
// both the engine's message text and the numeric result code.
type Error struct {
	code int    // The result code (e.g. SQLITE_RANGE, etc)
	msg  string // The error string - from sqlite3_errmsg when a connection is available
}

// Error is a method to return the expected error message string.
func (err *Error) Error() string {
	return err.msg
}

// Code is a function used to find the engine result code.
func (err *Error) Code() int {
	return err.code
}

// errResult turns an engine status code into an *Error, or nil for the
// non-error codes. The connection's current message is used only when it
// actually belongs to rc: some failures (misuse on a finalized statement,
// for one) return a code without updating the connection state, and
// sqlite3_errmsg would then read "not an error". Those fall back to the
// generic text for the code.
func errResult(db *C.sqlite3, rc C.int) error {
	switch rc {
	case C.SQLITE_OK, C.SQLITE_ROW, C.SQLITE_DONE:
		return nil
	}
	var msg string
	if db != nil && C.sqlite3_errcode(db) == rc {
		msg = C.GoString(C.sqlite3_errmsg(db))
	} else {
		msg = C.GoString(C.sqlite3_errstr(rc))
	}
	return &Error{code: int(rc), msg: msg}
}
