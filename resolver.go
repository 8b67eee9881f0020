// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exprc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bufbuild/exprc/source"
)

// Resolver finds source files by path.
type Resolver interface {
	FindFileByPath(path string) (*source.File, error)
}

// ResolverFunc is a simple function type that implements [Resolver].
type ResolverFunc func(string) (*source.File, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements [Resolver].
func (f ResolverFunc) FindFileByPath(path string) (*source.File, error) {
	return f(path)
}

// CompositeResolver tries each resolver in turn, returning the first
// success. If all of them fail, returns the first error.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements [Resolver].
func (c CompositeResolver) FindFileByPath(path string) (*source.File, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}

	var first error
	for _, r := range c {
		file, err := r.FindFileByPath(path)
		if err == nil {
			return file, nil
		}
		if first == nil {
			first = err
		}
	}
	return nil, first
}

// SourceResolver reads files from disk, or from anything that can open
// paths.
type SourceResolver struct {
	// Directories to search, in order. If empty, paths are opened as-is.
	SearchPaths []string

	// Opens a path. Defaults to [os.Open].
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements [Resolver].
func (r *SourceResolver) FindFileByPath(path string) (*source.File, error) {
	if len(r.SearchPaths) == 0 {
		return r.read(path, path)
	}

	var notFound error
	for _, dir := range r.SearchPaths {
		file, err := r.read(path, filepath.Join(dir, path))
		if errors.Is(err, fs.ErrNotExist) {
			notFound = err
			continue
		}
		return file, err
	}
	return nil, notFound
}

// read opens full, and names the resulting file path.
func (r *SourceResolver) read(path, full string) (*source.File, error) {
	open := r.Accessor
	if open == nil {
		open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}

	rc, err := open(full)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	text, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return source.NewFile(path, string(text)), nil
}
