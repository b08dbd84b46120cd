package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/gauntlet/config"
	"github.com/automoto/gauntlet/course"
	"github.com/automoto/gauntlet/server/core"
	"github.com/automoto/gauntlet/session"
	"github.com/automoto/gauntlet/shared/protocol"
)

func main() {
	envCfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	if err := core.InitPersistence(); err == nil {
		if saved, _ := core.LoadSettings(); saved != nil {
			if saved.Port != 0 {
				envCfg.Port = saved.Port
			}
			if saved.TickRate != 0 {
				envCfg.TickRate = saved.TickRate
			}
			if saved.SessionSeconds != 0 {
				envCfg.SessionSeconds = saved.SessionSeconds
			}
			if saved.CoursePath != "" {
				envCfg.CoursePath = saved.CoursePath
			}
		}
	}

	port := flag.Uint("port", envCfg.Port, "Server port")
	tickRate := flag.Int("tickrate", envCfg.TickRate, "Network sync rate (updates per second)")
	duration := flag.Int("duration", envCfg.SessionSeconds, "Session length in seconds")
	coursePath := flag.String("course", envCfg.CoursePath, "TMX course file (empty = built-in layout)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	track := course.Default()
	if *coursePath != "" {
		track, err = course.LoadTMX(os.DirFS("."), *coursePath)
		if err != nil {
			log.Fatalf("Failed to load course: %v", err)
		}
	}

	var srv *core.Server
	sess, err := session.New(session.Config{
		Course:          track,
		DurationSeconds: *duration,
		ResolvePlayer: func(entity any) (string, bool) {
			if srv == nil {
				return "", false
			}
			return srv.ResolvePlayer(entity)
		},
	})
	if err != nil {
		log.Fatalf("Failed to build course: %v", err)
	}

	srv = core.NewServer(sess)

	go sess.Run()

	// Network sync ticks run on the session loop, serialized with
	// event handling.
	syncTicker := time.NewTicker(time.Second / time.Duration(*tickRate))
	defer syncTicker.Stop()
	go func() {
		for range syncTicker.C {
			sess.Do(srv.Sync)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Println("Shutting down server...")
		case <-sess.Expired():
			log.Println("Session over, shutting down server...")
		}
		_ = core.SaveSettings(&core.SavedSettings{
			Port:           *port,
			TickRate:       *tickRate,
			SessionSeconds: *duration,
			CoursePath:     *coursePath,
		})
		sess.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting gauntletd on port %d (sync rate: %d/s, session: %ds)",
		*port, *tickRate, *duration)
	if err := srv.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
