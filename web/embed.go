// Package web embebe el cliente estático (login, dashboard y panel de
// administración) en el binario del servidor.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFiles embed.FS

// StaticFS devuelve el filesystem del cliente con static/ como raíz.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}
