// SPDX-License-Identifier: MIT

package preset

import (
	"fmt"
	"slices"
	"strings"
)

// Name identifies a preset table: a harmonic-elimination scheme and a
// variant tag, e.g. She9Alt2 is the second alternative 9-angle solution.
type Name string

// The preset catalog.
const (
	She3Default  Name = "She3Default"
	She3Alt1     Name = "She3Alt1"
	She5Default  Name = "She5Default"
	She5Alt1     Name = "She5Alt1"
	She5Alt2     Name = "She5Alt2"
	She7Default  Name = "She7Default"
	She7Alt1     Name = "She7Alt1"
	She9Default  Name = "She9Default"
	She9Alt1     Name = "She9Alt1"
	She9Alt2     Name = "She9Alt2"
	She11Default Name = "She11Default"
	She11Alt1    Name = "She11Alt1"
	She13Default Name = "She13Default"
	She13Alt1    Name = "She13Alt1"
	She15Default Name = "She15Default"
	She15Alt1    Name = "She15Alt1"
)

// FileExt is the extension of a preset's table file.
const FileExt = ".bin"

var catalog = []Name{
	She3Default, She3Alt1,
	She5Default, She5Alt1, She5Alt2,
	She7Default, She7Alt1,
	She9Default, She9Alt1, She9Alt2,
	She11Default, She11Alt1,
	She13Default, She13Alt1,
	She15Default, She15Alt1,
}

// Names returns the catalog in ascending order of angle count, default
// variant first. The slice is a fresh copy.
func Names() []Name {
	return slices.Clone(catalog)
}

// Known reports whether n belongs to the catalog.
func (n Name) Known() bool {
	return slices.Contains(catalog, n)
}

// FileName returns the table file name of n, "<Name>.bin".
func (n Name) FileName() string {
	return string(n) + FileExt
}

// ParseName resolves s to a catalog name, ignoring case and an optional
// ".bin" suffix, so "she9alt2" and "She9Alt2.bin" both give She9Alt2.
func ParseName(s string) (Name, error) {
	base := strings.TrimSuffix(s, FileExt)
	for _, n := range catalog {
		if strings.EqualFold(string(n), base) {
			return n, nil
		}
	}
	return "", fmt.Errorf("ParseName(%q): %w", s, ErrUnknownPreset)
}
