// Package web embeds the entry page template and static assets served by
// the API. These are external collaborators of the core: the backend only
// hands them to the browser.
package web

import "embed"

// Templates holds the HTML entry page.
//
//go:embed index.html
var Templates embed.FS

// Static holds the client-side assets mounted under /static/.
//
//go:embed static
var Static embed.FS
