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

/*
#cgo pkg-config: sqlite3
#include <sqlite3.h>
#include <stdlib.h>

// sqlite3_bind_text and sqlite3_bind_blob take SQLITE_TRANSIENT
// ((sqlite3_destructor_type)-1) as their destructor argument to request
// that the engine copy the supplied bytes before returning. cgo cannot
// cast that sentinel value to a function pointer, so these helpers
// supply it from the C side.
static int bind_text_transient(sqlite3_stmt *stmt, int col,
                               const char *text, int len) {
	return sqlite3_bind_text(stmt, col, text, len, SQLITE_TRANSIENT);
}

static int bind_blob_transient(sqlite3_stmt *stmt, int col,
                               const void *data, int len) {
	return sqlite3_bind_blob(stmt, col, data, len, SQLITE_TRANSIENT);
}
*/
import "C"

import "unsafe"

// Column value types as reported by ColumnType.
const (
	TypeInteger = C.SQLITE_INTEGER
	TypeFloat   = C.SQLITE_FLOAT
	TypeText    = C.SQLITE_TEXT
	TypeBlob    = C.SQLITE_BLOB
	TypeNull    = C.SQLITE_NULL
)

// A NULL text or blob pointer makes the engine bind SQL NULL rather than
// an empty value, so zero-length binds point at this placeholder instead.
var emptyBytes = C.CString("")

// Type `Stmt` is an opaque handle on a compiled statement awaiting
// parameter bindings before execution. Bind parameters are numbered from
// 1, result columns from 0, matching the engine's own conventions.
type Stmt struct {
	conn *Conn
	stmt *C.sqlite3_stmt
}

// Prepare compiles a single SQL statement on the connection.
func (c *Conn) Prepare(sql string) (*Stmt, error) {
	csql := C.CString(sql)
	defer C.free(unsafe.Pointer(csql))

	var stmt *C.sqlite3_stmt
	rc := C.sqlite3_prepare_v2(c.db, csql, -1, &stmt, nil)
	if rc != C.SQLITE_OK {
		return nil, errResult(c.db, rc)
	}
	return &Stmt{conn: c, stmt: stmt}, nil
}

// BindText binds text to the 1-based parameter col with the transient
// lifetime policy: the engine copies the bytes before this call returns,
// so the string's backing memory carries no obligation afterwards. The
// status code is the engine's own, passed through unmodified.
func (s *Stmt) BindText(col int, text string) error {
	p := emptyBytes
	if len(text) > 0 {
		p = (*C.char)(unsafe.Pointer(unsafe.StringData(text)))
	}
	rc := C.bind_text_transient(s.stmt, C.int(col), p, C.int(len(text)))
	return errResult(s.conn.db, rc)
}

// BindBlob binds the bytes to the 1-based parameter col, copied by the
// engine before the call returns, as with BindText. A nil or empty slice
// binds a zero-length blob, not SQL NULL; use BindNull for that.
func (s *Stmt) BindBlob(col int, data []byte) error {
	p := unsafe.Pointer(emptyBytes)
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	rc := C.bind_blob_transient(s.stmt, C.int(col), p, C.int(len(data)))
	return errResult(s.conn.db, rc)
}

// BindInt64 binds v to the 1-based parameter col.
func (s *Stmt) BindInt64(col int, v int64) error {
	rc := C.sqlite3_bind_int64(s.stmt, C.int(col), C.sqlite3_int64(v))
	return errResult(s.conn.db, rc)
}

// BindNull binds SQL NULL to the 1-based parameter col.
func (s *Stmt) BindNull(col int) error {
	rc := C.sqlite3_bind_null(s.stmt, C.int(col))
	return errResult(s.conn.db, rc)
}

// Step runs the statement to its next row. It reports true while a row is
// available and false once the statement has run to completion.
func (s *Stmt) Step() (bool, error) {
	rc := C.sqlite3_step(s.stmt)
	switch rc {
	case C.SQLITE_ROW:
		return true, nil
	case C.SQLITE_DONE:
		return false, nil
	}
	return false, errResult(s.conn.db, rc)
}

// Reset rewinds the statement so it can be stepped again. Bindings keep
// their values until ClearBindings.
func (s *Stmt) Reset() error {
	return errResult(s.conn.db, C.sqlite3_reset(s.stmt))
}

// ClearBindings sets every parameter back to NULL.
func (s *Stmt) ClearBindings() error {
	return errResult(s.conn.db, C.sqlite3_clear_bindings(s.stmt))
}

// Finalize releases the statement. Finalizing an already-finalized Stmt
// is a no-op. The returned error, if any, is the engine's report of the
// most recent evaluation of the statement.
func (s *Stmt) Finalize() error {
	if s.stmt == nil {
		return nil
	}
	rc := C.sqlite3_finalize(s.stmt)
	s.stmt = nil
	return errResult(s.conn.db, rc)
}

// ColumnText reads the 0-based result column as text. Embedded NUL bytes
// are preserved; a SQL NULL reads as the empty string.
func (s *Stmt) ColumnText(col int) string {
	p := C.sqlite3_column_text(s.stmt, C.int(col))
	if p == nil {
		return ""
	}
	n := C.sqlite3_column_bytes(s.stmt, C.int(col))
	return C.GoStringN((*C.char)(unsafe.Pointer(p)), n)
}

// ColumnBlob reads the 0-based result column as a fresh byte slice, or
// nil for SQL NULL.
func (s *Stmt) ColumnBlob(col int) []byte {
	p := C.sqlite3_column_blob(s.stmt, C.int(col))
	if p == nil {
		return nil
	}
	n := C.sqlite3_column_bytes(s.stmt, C.int(col))
	return C.GoBytes(p, n)
}

// ColumnInt64 reads the 0-based result column as an integer.
func (s *Stmt) ColumnInt64(col int) int64 {
	return int64(C.sqlite3_column_int64(s.stmt, C.int(col)))
}

// ColumnType reports the engine's value type for the 0-based result
// column of the current row (TypeInteger, TypeText, ...).
func (s *Stmt) ColumnType(col int) int {
	return int(C.sqlite3_column_type(s.stmt, C.int(col)))
}
