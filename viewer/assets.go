package viewer

import (
	"embed"
	"io/fs"
)

// Shell is the page markup the viewer renders into.
//
//go:embed page.html
var Shell string

//go:embed static
var static embed.FS

// Static holds the stylesheet and other assets referenced by Shell.
var Static, _ = fs.Sub(static, "static")
