// Package web carries the embedded browser client.
package web

import "embed"

//go:embed index.html app.js styles.css
var Assets embed.FS
