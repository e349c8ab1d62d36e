// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// writeFile writes data to dirout/fn, creating dirout if needed, and returns the file path
//  Note: gosl panics when the directory or the file cannot be created
func writeFile(dirout, fn, data string) (path string, err error) {
	path = filepath.Join(dirout, fn)
	defer func() {
		if r := recover(); r != nil {
			path, err = "", chk.Err("cannot write file %q:\n%v", path, r)
		}
	}()
	io.WriteStringToFileD(dirout, fn, data)
	return
}

// readFile reads the file at path
//  Note: gosl panics when the file cannot be read
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", path, r)
		}
	}()
	return io.ReadFile(path), nil
}
