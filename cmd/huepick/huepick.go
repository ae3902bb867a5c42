package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"

	"huepick/app"
	"huepick/config"
	"huepick/device/tcell"
	"huepick/history"
	"huepick/lifecycle"
	"huepick/loop"
	"huepick/picker"
	"huepick/window"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/huepick/config.toml)")
	logPath := flag.String("log", "", "log file")
	width := flag.Int("width", -1, "gradient width in cells, 0 fills the screen")
	height := flag.Int("height", -1, "gradient height in cells, 0 fills the screen")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		conf.LogFile = *logPath
	}
	if *width >= 0 {
		conf.Width = *width
	}
	if *height >= 0 {
		conf.Height = *height
	}

	logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output := termenv.NewOutput(os.Stdout)
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}()

	var journal *history.Journal
	if conf.History != "" {
		historyFile, err := os.OpenFile(conf.History, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("Failed to open history %q: %v", conf.History, err)
		} else {
			defer historyFile.Close()
			journal = history.New(historyFile)
			defer journal.Close()
		}
	}

	lc := lifecycle.New()
	eventLoop := loop.New()
	win := window.New()
	a := app.New(conf, eventLoop, win, journal)

	device, err := tcell.NewDevice(nil, eventLoop, win, a.HandleEvent)
	if err != nil {
		log.Printf("Failed to open terminal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return
	}
	a.SetDevice(device)
	device.Start(lc)

	a.Run(lc)
	lc.Stop()

	if a.Picks() > 0 {
		report(a.Picker())
	}
}

func report(p *picker.Picker) {
	profile := termenv.ColorProfile()
	colour := p.Colour()
	h, s, l := colour.Hsl()
	swatch := termenv.String("      ").Background(profile.FromColor(colour)).String()
	line := fmt.Sprintf("%s %s hsl(%.0f, %.0f%%, %.0f%%)", swatch, colour.Hex(), h, s*100, l*100)
	fmt.Println(line)
	fmt.Println(strings.Repeat("─", ansi.PrintableRuneWidth(line)))
}
