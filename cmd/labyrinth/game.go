package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ~60 FPS
const frameInterval = 16 * time.Millisecond

var errQuit = errors.New("quit requested")

// soundPlayer is the part of audio.SoundManager the loop needs
type soundPlayer interface {
	Play(audio.SoundType)
}

type game struct {
	screen   tcell.Screen
	session  *engine.Session
	keys     *input.KeyTable
	renderer *render.Renderer
	sounds   soundPlayer
	log      logrus.FieldLogger
}

// run pumps terminal events into the session and redraws every frame until the player quits
func (g *game) run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})

	grp, gCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		g.screen.ChannelEvents(events, quit)
		return nil
	})
	grp.Go(func() error {
		defer close(quit)
		defer crashGuard(g.screen, "GAME LOOP")
		return g.loop(gCtx, events)
	})

	if err := grp.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	g.renderer.Draw(g.session)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.handleKey(ev)
				if g.session.Done() {
					return errQuit
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			g.renderer.Draw(g.session)
		}
	}
}

func (g *game) handleKey(ev *tcell.EventKey) {
	action := g.keys.Resolve(ev)
	if action == input.ActionNone {
		return
	}

	fb := input.Dispatch(g.session, action)
	g.log.WithFields(logrus.Fields{
		"action": action.String(),
		"phase":  g.session.Phase().String(),
	}).Trace("input")

	if st, ok := feedbackSound(fb); ok && g.sounds != nil {
		g.sounds.Play(st)
	}
}

// crashGuard restores the terminal and reports a panic. Must be deferred directly.
func crashGuard(screen tcell.Screen, who string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31m%s CRASHED: %v\x1b[0m\n", who, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

func feedbackSound(fb input.Feedback) (audio.SoundType, bool) {
	switch fb {
	case input.FeedbackStep:
		return audio.SoundStep, true
	case input.FeedbackBump:
		return audio.SoundBump, true
	case input.FeedbackWin:
		return audio.SoundWin, true
	}
	return 0, false
}
