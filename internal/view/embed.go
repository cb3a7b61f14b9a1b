package view

import "embed"

// templatesFS holds the layout and page templates embedded at compile time,
// so the binary serves its pages without a templates directory on disk.
//
//go:embed templates
var templatesFS embed.FS
