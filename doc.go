// Package ink renders the Material ripple ("ink") touch feedback for 2D
// controls drawn with [Ebitengine], or headlessly with [gg].
//
// On press a translucent circle spreads from the touch point; on release it
// fades and is detached. Ink is driven by touches and by a [Timeline] that
// the host ticks once per frame.
//
// # Quick start
//
// The simplest way to get started is [Scene], which implements [ebiten.Game]
// and routes mouse and touch input to the view under the pointer:
//
//	scene := ink.NewScene(640, 480)
//	button := scene.NewInkView(ink.Rect{X: 40, Y: 40, Width: 160, Height: 64})
//	button.SetDelegate(ink.DelegateFuncs{
//		OnEnd: func(id ink.RippleID) { log.Printf("ripple %d done", id) },
//	})
//	ebiten.RunGame(scene)
//
// For full control, create a [Timeline] and an [InkView] yourself, call the
// touch methods from your own input handling, advance the timeline with
// [Timeline.Update] and draw with [InkView.Draw]:
//
//	tl := ink.NewTimeline()
//	view := ink.NewInkView(frame, tl)
//	view.TouchBegin(ink.Vec2{X: 12, Y: 8})
//	// each frame:
//	tl.Update(1.0 / 60)
//	view.Draw(screen)
//
// # Pipelines
//
// An [InkView] has two ripple pipelines. The legacy pipeline ([LegacyInkLayer])
// keeps a registry of [ForegroundRipple] values, one per touch, each with its
// own [RippleState]. Bounded ripples fade in on press and expand, drift and
// fade on release; unbounded ripples expand toward their center while held
// and finish from whatever opacity and scale they reached. Cancellation is
// sticky: a cancelled ripple never reports a normal end.
//
// The single-ripple pipeline ([InkLayer]) keeps exactly one active circle
// that follows the touch in and out of the view.
//
// # Timeline
//
// Animations are [Animation] descriptors attached to a [Layer] under a key.
// The timeline steps them with [gween] tweens, writes the final value to the
// layer when they end, detaches them and then runs their completion
// callbacks. Removing or cancelling an animation never runs its callback.
//
// # Configuration
//
// [Config] holds every persisted setting and round-trips through
// encoding/json; absent keys take the [DefaultConfig] values.
//
// # Notifications
//
// A [Delegate] receives AnimationDidStart and AnimationDidEnd tagged with the
// ripple's [RippleID]. Delegates that also implement [CancelObserver] hear
// about cancelled ripples. The ink/ecs module publishes notifications into a
// [Donburi] world.
//
// # Debugging
//
// [SetDebugMode] logs scheduling and per-tick timeline stats and panics on
// use of disposed layers. [TouchScript] replays JSON touch sequences for
// automated visual tests, and [InkView.Snapshot] rasterizes the current ink
// without a GPU.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package ink
