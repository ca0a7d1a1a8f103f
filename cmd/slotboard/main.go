// cmd/slotboard/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tamzrod/slotboard/internal/config"
	"github.com/tamzrod/slotboard/internal/dashboard"
	"github.com/tamzrod/slotboard/internal/display"
	dmodbus "github.com/tamzrod/slotboard/internal/display/modbus"
	"github.com/tamzrod/slotboard/internal/logger"
	"github.com/tamzrod/slotboard/internal/poller"
	"github.com/tamzrod/slotboard/internal/render"
	"github.com/tamzrod/slotboard/internal/server"
	"github.com/tamzrod/slotboard/internal/status"
)

func main() {
	log := logger.NewLogger("slotboard")

	if len(os.Args) < 2 {
		log.Fatalf("usage: slotboard <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	d := cfg.Dashboard

	level, _ := logger.ParseLevel(d.LogLevel)
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Display surfaces
	// --------------------

	board := display.NewBoard()
	surfaces := display.Fanout{board}

	if m := d.Modbus; m != nil {
		cli, err := dmodbus.NewEndpointClient(dmodbus.Config{
			Endpoint: m.Endpoint,
			UnitID:   m.UnitID,
			Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("modbus surface failed (endpoint=%s): %v", m.Endpoint, err)
		}
		defer cli.Close()

		sink, err := dmodbus.NewSurface(dmodbus.Plan{
			Endpoint:    m.Endpoint,
			BaseAddress: m.BaseAddress,
			MaxSlots:    m.MaxSlots,
		}, cli)
		if err != nil {
			log.Fatalf("modbus surface failed (endpoint=%s): %v", m.Endpoint, err)
		}
		surfaces = append(surfaces, sink)
		log.Infof("modbus surface enabled (endpoint=%s base=%d slots=%d)", m.Endpoint, m.BaseAddress, m.MaxSlots)
	}

	// --------------------
	// Renderer + poll cycle
	// --------------------

	labels, _ := status.LabelsFor(d.Locale)
	renderer := render.New(render.Options{
		Labels:   labels,
		Window:   d.History.Window,
		Location: d.Location(),
	})

	p, err := poller.Build(d)
	if err != nil {
		log.Fatalf("poller build failed (endpoint=%s): %v", d.Endpoint, err)
	}

	dash := dashboard.New(renderer, surfaces, log)

	// ---- channel between poller and renderer ----
	out := make(chan poller.PollResult)

	go dash.Consume(ctx, out)
	handle := p.Start(ctx, out)

	log.Infof("polling %s every %s (timeout %s)", d.Endpoint, d.Interval(), d.Timeout())

	// --------------------
	// HTTP surface (optional)
	// --------------------

	if d.HTTP.Listen != "" {
		gin.SetMode(gin.ReleaseMode)
		srv := server.New(board, d.Interval(), log)
		go func() {
			if err := srv.ListenAndServe(ctx, d.HTTP.Listen); err != nil {
				log.Errorf("http surface stopped: %v", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	handle.Stop()
	log.Infof("stopped")
}
