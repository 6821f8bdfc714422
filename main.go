// rocktung is a small side-scrolling game set in the Roc Tung stone age.
//
// Usage:
//
//	rocktung                 - start at the title menu
//	rocktung --chapter 2     - jump straight into a chapter
//
// Flags:
//
//	--debug         - debug logging and an FPS overlay
//	--fullscreen    - start fullscreen (F11 toggles)
//	--chapter <n>   - skip the front end and load chapter n
//	--seed <value>  - RNG seed for reproducible runs (0 = time based)
//	--watch         - reload prefab YAML from ./prefabs on save (needs --debug)
//	--assets <dir>  - read art missing from the binary from dir
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocktung/common"
	"github.com/spf13/cobra"
)

var (
	flagDebug      bool
	flagFullscreen bool
	flagChapter    int
	flagSeed       uint64
	flagWatch      bool
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocktung",
	Short: "Roc Tung - a stone age side-scroller",
	Long: `Roc Tung walks a villager through two chapters: pairing stones into a
hand axe, and keeping clear of a charging buffalo.

Controls:
  Left/Right, A/D  - Walk
  Up/Space         - Jump
  F                - Pick up a stone
  P                - Pause
  F11              - Toggle fullscreen
  Esc              - Quit`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "debug logging and FPS overlay")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "start fullscreen")
	rootCmd.Flags().IntVar(&flagChapter, "chapter", 0, "start directly in chapter n (1-based)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "hot reload prefabs from ./prefabs (requires --debug)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "directory searched for images missing from the binary")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocktung",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	if flagWatch && !flagDebug {
		return fmt.Errorf("--watch requires --debug")
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game, err := NewGame(Options{
		Debug:     flagDebug,
		Chapter:   flagChapter,
		Seed:      seed,
		Watch:     flagWatch,
		AssetsDir: flagAssets,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Roc Tung")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.TPS())
	ebiten.SetFullscreen(flagFullscreen)

	logger.Info("starting", "seed", seed, "chapter", flagChapter)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
