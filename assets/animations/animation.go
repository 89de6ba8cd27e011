package animations

import (
	"fmt"

	"github.com/automoto/layerhop/config"
)

// Animation steps through a strip of frames at a fixed rate.
type Animation struct {
	Frames int
	FPS    float64
	Loop   bool
	Looped bool // set once the last frame has been passed

	elapsed float64
	frame   int
}

// Update advances the animation by dt seconds. It reports whether a
// non-looping pass finished during this call.
func (a *Animation) Update(dt float64) bool {
	if a.Frames <= 0 || a.FPS <= 0 || (a.Looped && !a.Loop) {
		return false
	}

	a.elapsed += dt
	step := 1 / a.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame < a.Frames {
			continue
		}
		a.Looped = true
		if !a.Loop {
			// hold the last frame
			a.frame = a.Frames - 1
			a.elapsed = 0
			return true
		}
		a.frame = 0
	}
	return false
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(frames int, fps float64, loop bool) *Animation {
	return &Animation{
		Frames: frames,
		FPS:    fps,
		Loop:   loop,
	}
}

// Controller plays the animation of a character's current status. A status
// set with a completion callback plays once and then fires the callback;
// other statuses loop.
type Controller struct {
	Kind string

	set        config.AnimationSet
	anims      map[config.StatusID]*Animation
	current    config.StatusID
	onComplete func()
}

func NewController(kind string) (*Controller, error) {
	set, ok := config.CharacterAnimations[kind]
	if !ok {
		return nil, fmt.Errorf("animations: no definitions for %q", kind)
	}

	c := &Controller{
		Kind:    kind,
		set:     set,
		anims:   make(map[config.StatusID]*Animation, len(set.Statuses)),
		current: config.StatusNone,
	}
	for status, def := range set.Statuses {
		c.anims[status] = NewAnimation(def.Frames, def.FPS, true)
	}
	return c, nil
}

func (c *Controller) HasStatus(status config.StatusID) bool {
	_, ok := c.anims[status]
	return ok
}

// SetStatus switches playback to status. With keepFrame the new animation
// continues from the current frame index instead of restarting.
func (c *Controller) SetStatus(status config.StatusID, onComplete func(), keepFrame bool) {
	next, ok := c.anims[status]
	if !ok {
		return
	}

	frame, elapsed := 0, 0.0
	if prev := c.Current(); prev != nil && keepFrame {
		frame, elapsed = prev.frame, prev.elapsed
	}

	next.Restart()
	next.Loop = onComplete == nil
	if keepFrame && next.Frames > 0 {
		next.frame = min(frame, next.Frames-1)
		next.elapsed = elapsed
	}

	c.current = status
	c.onComplete = onComplete
}

func (c *Controller) FrameSize() (int, int) {
	return c.set.FrameWidth, c.set.FrameHeight
}

// Update advances the current animation and fires the completion callback
// when a one-shot pass ends. The callback may set a new status.
func (c *Controller) Update(dt float64) {
	anim := c.Current()
	if anim == nil || !anim.Update(dt) {
		return
	}
	if cb := c.onComplete; cb != nil {
		c.onComplete = nil
		cb()
	}
}

// Current returns the playing animation, or nil before the first status.
func (c *Controller) Current() *Animation {
	return c.anims[c.current]
}

func (c *Controller) Status() config.StatusID {
	return c.current
}

// Frame is the frame index of the playing animation.
func (c *Controller) Frame() int {
	if anim := c.Current(); anim != nil {
		return anim.Frame()
	}
	return 0
}
