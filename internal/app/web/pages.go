// Package web wires the static HTML pages of the site.
package web

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Pages maps each site route to the file it serves from the public
// directory. The table mirrors the site map: content pages, the auth
// pages and the Twi level-one lesson sequence.
var Pages = map[string]string{
	"/":                 "index.html",
	"/languages":        "languages.html",
	"/culture":          "culture.html",
	"/translation":      "translation.html",
	"/services":         "services.html",
	"/teachers":         "teachers.html",
	"/games":            "games.html",
	"/login":            "login.html",
	"/register":         "register.html",
	"/dashboard":        "dashboard.html",
	"/twi-level1-intro": "twi-level1-intro.html",
	"/twi-level1-step1": "twi-level1-step1.html",
	"/twi-level1-step2": "twi-level1-step2.html",
	"/twi-level1-step3": "twi-level1-step3.html",
	"/twi-level1-step4": "twi-level1-step4.html",
	"/twi-level1-step5": "twi-level1-step5.html",
}

// Register mounts every page route plus the shared asset directories.
func Register(r *gin.Engine, publicDir string) {
	for route, file := range Pages {
		r.StaticFile(route, filepath.Join(publicDir, file))
	}
	r.Static("/css", filepath.Join(publicDir, "css"))
	r.Static("/js", filepath.Join(publicDir, "js"))
}
