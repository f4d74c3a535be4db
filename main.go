package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"VectorBoard/internal/config"
	"VectorBoard/internal/ui"
)

const appID = "io.vectorboard.editor"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Vector Board")

	a := app.NewWithID(appID)
	cfg := config.Load(a.Preferences())
	log.Printf("Loaded config: history limit %d, anchor size %g", cfg.HistoryLimit, cfg.AnchorSize)

	ui.RunApp(a, cfg)
}
