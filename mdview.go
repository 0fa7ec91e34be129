// Package mdview provides a viewer for a static collection of markdown
// documents organised as a directory tree. It fetches a tree listing and
// individual documents from a backend, renders markdown with embedded LaTeX
// into HTML, and maintains a collapsible navigation sidebar with a
// light/dark theme toggle.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goldmark/, http/).
package mdview
