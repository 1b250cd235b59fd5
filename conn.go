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
*/
import "C"

import "unsafe"

// Type `Conn` is an opaque handle on an open SQLite database.
//
// Thread Safety: this package adds no locking of its own; whatever the
// linked engine's threading mode permits for a sqlite3* handle applies
// unchanged to a Conn and to the statements prepared on it.
type Conn struct {
	db *C.sqlite3
}

// Open a database at the given path, creating it if needed. The usual
// SQLite path conventions apply, including ":memory:".
func Open(path string) (*Conn, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var db *C.sqlite3
	rc := C.sqlite3_open_v2(cpath, &db, C.SQLITE_OPEN_READWRITE|C.SQLITE_OPEN_CREATE, nil)
	if rc != C.SQLITE_OK {
		// sqlite3_open_v2 hands back a handle even on failure so the
		// message can be read; it still has to be closed.
		err := errResult(db, rc)
		if db != nil {
			C.sqlite3_close_v2(db)
		}
		return nil, err
	}
	return &Conn{db: db}, nil
}

// Exec runs one or more SQL statements that produce no result rows.
func (c *Conn) Exec(sql string) error {
	csql := C.CString(sql)
	defer C.free(unsafe.Pointer(csql))
	rc := C.sqlite3_exec(c.db, csql, nil, nil, nil)
	return errResult(c.db, rc)
}

// Close releases the connection. Closing an already-closed Conn is a no-op.
// Statements still open on the connection are left for the engine to deal
// with per its sqlite3_close_v2 contract.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	rc := C.sqlite3_close_v2(c.db)
	c.db = nil
	return errResult(nil, rc)
}
