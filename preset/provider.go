// SPDX-License-Identifier: MIT

package preset

import (
	"fmt"
	"io"
	"io/fs"
	"path"
)

// Provider supplies the raw byte stream of a named preset. The registry
// closes every stream it receives. Open must return either a usable stream
// or an error: a nil interface is rejected, but a typed-nil stream such as
// (*os.File)(nil) is not detected and fails inside the decoder.
type Provider interface {
	Open(name Name) (io.ReadCloser, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(name Name) (io.ReadCloser, error)

// Open calls f(name).
func (f ProviderFunc) Open(name Name) (io.ReadCloser, error) { return f(name) }

// FSProvider resolves presets as "<Dir>/<Name>.bin" inside FS. It works
// with embed.FS, os.DirFS and fstest.MapFS alike.
type FSProvider struct {
	FS  fs.FS
	Dir string // slash-separated, "" or "." for the root
}

// NewFSProvider returns an FSProvider over fsys rooted at dir.
func NewFSProvider(fsys fs.FS, dir string) FSProvider {
	return FSProvider{FS: fsys, Dir: dir}
}

// Open opens the table file of name.
func (p FSProvider) Open(name Name) (io.ReadCloser, error) {
	if p.FS == nil {
		return nil, fmt.Errorf("FSProvider.Open(%s): %w", name, ErrNilProvider)
	}
	f, err := p.FS.Open(path.Join(p.Dir, name.FileName()))
	if err != nil {
		return nil, err
	}
	return f, nil
}
