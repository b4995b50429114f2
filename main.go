// Package main provides the entry point for the Stitch Designer
// application.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/project"
	"stitch-designer/internal/textrender"
	"stitch-designer/internal/version"
	"stitch-designer/ui/mainwindow"
	"stitch-designer/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Stitch Designer v%s", version.Version)

	fyneApp := app.NewWithID("stitch-designer")

	eng := engine.New(textrender.New())
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, eng, appPrefs)

	// Open a document passed on the command line, otherwise start with a
	// default canvas.
	if len(os.Args) > 1 {
		path := os.Args[1]
		p, _, err := project.Load(path)
		if err != nil {
			log.Printf("Failed to open %s: %v", path, err)
			eng.NewPattern("Untitled", 100, 100, 14)
		} else {
			eng.SetPattern(p)
		}
	} else {
		eng.NewPattern("Untitled", 100, 100, 14)
	}

	win.ShowAndRun()
}
