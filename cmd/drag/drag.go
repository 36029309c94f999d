package main

import (
	"drag"
	"drag/config"
	"drag/device"
	"drag/device/tcell"
	"drag/events"
	"drag/position"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/muesli/termenv"
)

func main() {
	log.SetFlags(0)

	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	log.SetOutput(io.Discard)
	if cfg.Log != "" {
		logFile, err := os.Create(cfg.Log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	format, err := cfg.Format()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	sink := position.New(format)
	sink.Log = log.Default()

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output := termenv.NewOutput(os.Stdout)
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}()
	p := termenv.ColorProfile()
	output.SetBackgroundColor(p.FromColor(color.RGBA{0, 16, 64, 255}))

	doc, err := tcell.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		return
	}
	defer doc.Close()

	for _, b := range cfg.Boxes {
		opts, err := b.Options()
		if err != nil {
			log.Printf("### skipping box: %v", err)
			continue
		}
		box := doc.Add(b.Label, device.Point{X: float64(b.Left), Y: float64(b.Top)}, device.Size{Width: b.Width, Height: b.Height})
		c, err := drag.New(box, doc.Target(), opts, sink)
		if err != nil {
			log.Printf("### skipping box %q: %v", b.Label, err)
			continue
		}
		watch(doc, c, box)
		c.Activate()
		defer c.Deactivate()
	}
	doc.SetStatus(fmt.Sprintf("%s format, Esc to quit", format.Name()))
	doc.Run()
}

func watch(doc *tcell.Document, c *drag.Controller, box *tcell.Box) {
	c.On(drag.EventDragStart, func(e *events.Event) {
		log.Printf("### dragstart %q %s origin %s", box.Label(), e, c.Origin())
	})
	c.On(drag.EventDrag, func(*events.Event) {
		doc.SetStatus(fmt.Sprintf("%s: %s %s", box.Label(), c.Mode(), c.Position()))
	})
	c.On(drag.EventDragEnd, func(e *events.Event) {
		log.Printf("### dragend %q at %s", box.Label(), c.Position())
		doc.SetStatus(fmt.Sprintf("%s dropped at %s", box.Label(), c.Position()))
	})
}
