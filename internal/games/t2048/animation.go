package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// Animation lengths in ticks.
const (
	slideAnimationDuration = 8  // ~133ms at 60fps
	popAnimationDuration   = 6  // ~100ms at 60fps
	scoreFlashDuration     = 45 // ~750ms at 60fps
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animator plays back the metadata of the last move: tiles slide to their
// targets, then merged and spawned tiles pop. The metadata is dropped once
// played.
type animator struct {
	phase  AnimationPhase
	ticks  int
	slides []engine.Slide
	pops   []engine.Position
}

// start begins animating a move outcome.
func (a *animator) start(out Outcome) {
	a.stop()
	a.slides = out.Slides

	for _, m := range out.Merged {
		a.pops = append(a.pops, m.Pos())
	}
	if out.Spawned != nil {
		a.pops = append(a.pops, out.Spawned.Pos())
	}

	switch {
	case len(a.slides) > 0:
		a.phase = PhaseSlide
	case len(a.pops) > 0:
		a.phase = PhasePop
	}
}

// stop drops any animation in progress.
func (a *animator) stop() {
	*a = animator{}
}

// advance moves the animation forward by one tick.
func (a *animator) advance() {
	if a.phase == PhaseNone {
		return
	}
	a.ticks++

	switch a.phase {
	case PhaseSlide:
		if a.ticks >= slideAnimationDuration {
			a.slides = nil
			a.ticks = 0
			a.phase = PhasePop
			if len(a.pops) == 0 {
				a.stop()
			}
		}
	case PhasePop:
		if a.ticks >= popAnimationDuration {
			a.stop()
		}
	}
}

// active reports whether an animation is playing.
func (a *animator) active() bool {
	return a.phase != PhaseNone
}

// progress returns the eased completion of the current phase in [0, 1].
func (a *animator) progress() float64 {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideAnimationDuration
	case PhasePop:
		duration = popAnimationDuration
	default:
		return 1
	}
	t := float64(a.ticks) / float64(duration)
	if t > 1 {
		t = 1
	}
	return easeOutQuad(t)
}

// covers reports whether the board cell at p is drawn by the animation
// instead of from the board.
func (a *animator) covers(p engine.Position) bool {
	if a.phase != PhaseSlide {
		return false
	}
	for _, s := range a.slides {
		if s.To == p {
			return true
		}
	}
	for _, q := range a.pops {
		if q == p {
			return true
		}
	}
	return false
}

// popping reports whether the cell at p is in its pop phase.
func (a *animator) popping(p engine.Position) bool {
	if a.phase != PhasePop {
		return false
	}
	for _, q := range a.pops {
		if q == p {
			return true
		}
	}
	return false
}

// slidePosition interpolates a slide in fractional cell coordinates.
func slidePosition(s engine.Slide, t float64) (row, col float64) {
	row = float64(s.From.Row) + float64(s.To.Row-s.From.Row)*t
	col = float64(s.From.Col) + float64(s.To.Col-s.From.Col)*t
	return row, col
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// scoreFlash shows "+N" next to the score for a short while after a merge.
type scoreFlash struct {
	amount int
	ticks  int
}

func (f *scoreFlash) show(amount int) {
	if amount <= 0 {
		return
	}
	f.amount = amount
	f.ticks = scoreFlashDuration
}

func (f *scoreFlash) advance() {
	if f.ticks > 0 {
		f.ticks--
	}
}

func (f *scoreFlash) visible() bool {
	return f.ticks > 0 && f.amount > 0
}
