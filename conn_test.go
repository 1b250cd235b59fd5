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

import (
	"errors"
	"testing"
)

// --- Tests ---

// Test connection open, close and error reporting.
func TestConn(t *testing.T) {
	t.Run("OpenClose", func(t *testing.T) {
		db, err := Open(":memory:")
		if err != nil {
			t.Fatal(err)
		}
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	t.Run("DoubleClose", func(t *testing.T) {
		db, err := Open(":memory:")
		if err != nil {
			t.Fatal(err)
		}
		db.Close()
		if err := db.Close(); err != nil {
			t.Errorf("second Close: got %v, want nil", err)
		}
	})

	t.Run("OpenBadPath", func(t *testing.T) {
		_, err := Open("/no-such-directory-for-sqlite-tests/x.db")
		var serr *Error
		if !errors.As(err, &serr) {
			t.Fatalf("got %v, want *Error", err)
		}
		if serr.Code() == ResultOK {
			t.Error("error carries an OK result code")
		}
		if serr.Error() == "" {
			t.Error("error carries no message")
		}
	})

	t.Run("ExecSyntaxError", func(t *testing.T) {
		db := testDB(t)
		err := db.Exec("NOT EVEN SQL")
		var serr *Error
		if !errors.As(err, &serr) {
			t.Fatalf("got %v, want *Error", err)
		}
		if serr.Code() != ResultError {
			t.Errorf("code = %d, want ResultError (%d)", serr.Code(), ResultError)
		}
	})

	t.Run("PrepareSyntaxError", func(t *testing.T) {
		db := testDB(t)
		if _, err := db.Prepare("SELEKT 1"); err == nil {
			t.Error("Prepare accepted bad SQL")
		}
	})
}

// Test the version report of the linked engine.
func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("empty engine version")
	}
}
