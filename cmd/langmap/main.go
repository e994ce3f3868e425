package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"langmap/internal/config"
	"langmap/internal/langdata"
	"langmap/internal/logger"
	"langmap/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	out, err := logger.Open(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	l := logger.Setup(out, cfg.LogLevel, cfg.LogFormat)

	mode, err := langdata.ParseMode(cfg.Mode)
	if err != nil {
		log.Fatal(err)
	}

	var tables fs.FS = langdata.Default()
	if cfg.DataDir != "" {
		tables = os.DirFS(cfg.DataDir)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	data, err := langdata.Load(ctx, tables)
	cancel()
	if err != nil {
		l.Error("reference_data_failed", "dir", cfg.DataDir, "err", err)
		log.Fatal(err)
	}
	l.Info("reference_data_loaded", "codes", len(data.Codes), "countries", len(data.Countries), "languages", len(data.Languages))

	geometry := cfg.GeometryPath
	if len(os.Args) > 1 {
		geometry = os.Args[1]
	}
	m := tui.New(tui.Options{
		Data:           data,
		GeometryPath:   geometry,
		TopologyObject: cfg.TopologyObject,
		Mode:           mode,
		WheelStep:      cfg.WheelStep,
		PanStep:        cfg.PanStep,
		Logger:         l,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()).Run(); err != nil {
		l.Error("program_failed", "err", err)
		log.Fatal(err)
	}
}
