package templates

import "embed"

// PagesFS contains the HTML page templates. Every page defines a "content"
// block rendered inside base.html.
//
//go:embed pages/*.html
var PagesFS embed.FS

// StaticFS contains the stylesheet and the in-browser script, including the
// client-side feed filter.
//
//go:embed static/*
var StaticFS embed.FS
