// Package sim plays matches without a terminal: player 2 is the AI and
// player 1 is a simple tracker. It drives the same engine the interactive
// game uses and reports on how the match went.
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/logger"
)

// DefaultMaxTicks bounds a match whose rally never ends.
const DefaultMaxTicks = 200000

// Options configure a headless match.
type Options struct {
	PointsToWin int
	// MaxTicks stops the match early; 0 means DefaultMaxTicks.
	MaxTicks int
	// TrackerStep is how far player 1 moves toward the ball when it moves.
	// 0 means the AI's own step.
	TrackerStep int
	// TrackerEvery moves player 1 only on every n-th tick. Values below 1
	// mean every tick.
	TrackerEvery int
	Log          *logrus.Entry
}

// Report summarizes a match.
type Report struct {
	Ticks              int
	LeftScore          int
	RightScore         int
	Winner             game.Side
	Completed          bool
	PaddleHits         int
	WallBounces        int
	LongestRally       int
	PeakSpeed          int
	EnvelopeViolations int
}

// Run plays one match to a win or to the tick cap.
func Run(opts Options) Report {
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.TrackerStep <= 0 {
		opts.TrackerStep = game.AIPaddleSpeed
	}
	if opts.TrackerEvery < 1 {
		opts.TrackerEvery = 1
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	s := game.NewState(opts.PointsToWin)
	var rep Report
	rally := 0

	for rep.Ticks < opts.MaxTicks {
		if rep.Ticks%opts.TrackerEvery == 0 {
			s.Left.Follow(s.Ball.Y, opts.TrackerStep, s.Field)
		}
		s = game.StepAI(s)

		leftBefore, rightBefore := s.LeftScore, s.RightScore
		var events []game.Event
		s, events = game.Tick(s)
		rep.Ticks++

		for _, ev := range events {
			switch ev.Kind {
			case game.EventPaddleHit:
				rep.PaddleHits++
				rally++
				if rally > rep.LongestRally {
					rep.LongestRally = rally
				}
			case game.EventWallBounce:
				rep.WallBounces++
			case game.EventScore:
				rally = 0
				log.WithFields(logrus.Fields{
					"tick":   rep.Ticks,
					"scorer": ev.Side.String(),
					"left":   s.LeftScore,
					"right":  s.RightScore,
				}).Debug("point")
			case game.EventWin:
				rep.LeftScore, rep.RightScore = leftBefore, rightBefore
				rep.Winner = ev.Side
				rep.Completed = true
			}
		}

		if sp := s.Ball.Speed(); sp > rep.PeakSpeed {
			rep.PeakSpeed = sp
		}
		if !s.InEnvelope() {
			rep.EnvelopeViolations++
			log.WithFields(logrus.Fields{
				"tick": rep.Ticks,
				"ball": s.Ball,
			}).Warn("ball left the playing envelope")
		}
		if rep.Completed {
			break
		}
	}

	if !rep.Completed {
		rep.LeftScore, rep.RightScore = s.LeftScore, s.RightScore
	}
	log.WithFields(logrus.Fields{
		"ticks":     rep.Ticks,
		"left":      rep.LeftScore,
		"right":     rep.RightScore,
		"winner":    rep.Winner.String(),
		"completed": rep.Completed,
	}).Info("simulation finished")
	return rep
}
