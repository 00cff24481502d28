// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package angle persists an explicit ANGLE-style rendering backend
// choice in a one-line selection file and resolves it into an
// environment override at startup.
//
// The selection file holds a single literal token ("gl", "d3d9",
// "d3d11" or "d3d11on12"); an absent or empty file means Auto. The
// file is read once at configuration time, rewritten on an explicit
// user change and deleted to reset to Auto.
package angle

import "fmt"

// Backend identifies a rendering backend implementation. The enum is
// closed: Change panics on any other value.
type Backend uint8

const (
	// Auto lets the platform pick a backend. It is the zero value and
	// the result of an absent, empty or unrecognized selection file.
	Auto Backend = iota

	// OpenGL forces the native OpenGL backend.
	OpenGL

	// D3D9 forces the Direct3D 9 backend.
	D3D9

	// D3D11 forces the Direct3D 11 backend.
	D3D11

	// D3D11on12 forces the Direct3D 11-on-12 layered backend.
	D3D11on12
)

// tokens maps persisted file tokens to backends, most specific first
// so prefix matching can never resolve "d3d11on12" as "d3d11".
var tokens = []struct {
	token   string
	backend Backend
}{
	{"d3d11on12", D3D11on12},
	{"d3d11", D3D11},
	{"d3d9", D3D9},
	{"gl", OpenGL},
}

func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case OpenGL:
		return "gl"
	case D3D9:
		return "d3d9"
	case D3D11:
		return "d3d11"
	case D3D11on12:
		return "d3d11on12"
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend maps a backend name to its Backend value. "auto" and
// the empty string parse to Auto. Used by tools that accept a backend
// name from the user.
func ParseBackend(s string) (Backend, error) {
	if s == "" || s == "auto" {
		return Auto, nil
	}
	for _, t := range tokens {
		if s == t.token {
			return t.backend, nil
		}
	}
	return Auto, fmt.Errorf("angle: unknown backend %q", s)
}
