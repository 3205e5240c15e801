// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-radial-arena/internal/assets"
	"go-radial-arena/internal/audio"
	"go-radial-arena/internal/broadcast"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/leaderboard"
	"go-radial-arena/internal/state"
	"go-radial-arena/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		modeFlag = flag.String("mode", "classic", "game mode: classic, time-attack or survival")
		seed     = flag.Int64("seed", 0, "PRNG seed, 0 for a random run")
		defsDir  = flag.String("defs", "", "directory with enemies.json and weapons.json overrides")
		fontsDir = flag.String("fonts", "assets/fonts", "directory with .ttf font overrides")
		lbURL    = flag.String("leaderboard-url", os.Getenv("ARENA_LEADERBOARD_URL"), "PostgREST base URL of the scores table; empty keeps scores in memory")
		lbKey    = flag.String("leaderboard-key", os.Getenv("ARENA_LEADERBOARD_KEY"), "API key for the leaderboard")
		name     = flag.String("name", os.Getenv("USER"), "player name for submitted scores")
		spectate = flag.String("spectate", "", "address to serve the spectator websocket on, e.g. :8080")
		mute     = flag.Bool("mute", false, "start without sound")
		debug    = flag.Bool("debug", false, "verbose logging")
		skipMenu = flag.Bool("play", false, "skip the menu and start the selected mode")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mode, err := config.ParseMode(*modeFlag)
	if err != nil {
		slog.Error("invalid mode", "error", err)
		os.Exit(2)
	}

	if *defsDir != "" {
		loadDefinitions(*defsDir)
	}

	fonts := assets.NewFontManager(*fontsDir)
	defer fonts.Cleanup()
	faces := ui.Faces{
		Title:  fonts.MustFace(assets.FontBold, 22),
		Body:   fonts.MustFace(assets.FontRegular, 15),
		Banner: fonts.MustFace(assets.FontBold, 48),
	}

	ctx := &state.Context{
		Faces:      faces,
		PlayerName: leaderboard.SanitizeName(*name),
		Seed:       *seed,
		Mode:       mode,
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sound.Cleanup()
		if *mute {
			sound.ToggleMute()
		}
		ctx.Audio = sound
		ctx.Muter = sound
	}

	var service leaderboard.Service = leaderboard.NewMemoryService()
	if *lbURL != "" {
		service = leaderboard.NewRESTClient(*lbURL, *lbKey, nil)
		slog.Info("online leaderboard enabled", "url", *lbURL)
	}
	ctx.Board = leaderboard.NewBoard(service)

	if *spectate != "" {
		hub := broadcast.NewHub()
		srv := broadcast.Serve(*spectate, hub)
		ctx.Hub = hub
		defer func() {
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		slog.Info("spectator stream listening", "addr", *spectate, "path", "/spectate")
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, ctx, mode))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Radial Arena")
	if err := ebiten.RunGame(app); err != nil {
		slog.Error("game loop stopped", "error", err)
	}
	ctx.Board.Wait()
}

// loadDefinitions applies optional JSON overrides; a missing file keeps the
// built-in table.
func loadDefinitions(dir string) {
	for file, load := range map[string]func(string) error{
		"enemies.json": defs.LoadEnemyDefinitions,
		"weapons.json": defs.LoadWeaponDefinitions,
	} {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := load(path); err != nil {
			slog.Error("failed to load definitions", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("definitions loaded", "path", path)
	}
}
