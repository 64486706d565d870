package level

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, in play order.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	levels, err := NewFSLoader(sub, "builtin").LoadAll()
	if err != nil {
		return nil, err
	}
	return NewCatalog(levels...)
}
