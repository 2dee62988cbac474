package ink

// Delegate receives ripple lifecycle notifications. Every call carries the
// ripple's ID so one delegate can follow many concurrent ripples.
//
// For a given ripple AnimationDidStart fires once, before anything else, and
// AnimationDidEnd fires at most once, around detachment: legacy ripples are
// detached and deregistered first, single-ripple InkLayers notify and then
// detach.
type Delegate interface {
	AnimationDidStart(id RippleID)
	AnimationDidEnd(id RippleID)
}

// CancelObserver is an optional extension of Delegate. A ripple whose end
// notification was suppressed by cancellation reports here instead, once it
// has been detached.
type CancelObserver interface {
	AnimationDidCancel(id RippleID)
}

// DelegateFuncs adapts plain functions to Delegate and CancelObserver.
// Nil fields are skipped.
type DelegateFuncs struct {
	OnStart  func(RippleID)
	OnEnd    func(RippleID)
	OnCancel func(RippleID)
}

func (d DelegateFuncs) AnimationDidStart(id RippleID) {
	if d.OnStart != nil {
		d.OnStart(id)
	}
}

func (d DelegateFuncs) AnimationDidEnd(id RippleID) {
	if d.OnEnd != nil {
		d.OnEnd(id)
	}
}

func (d DelegateFuncs) AnimationDidCancel(id RippleID) {
	if d.OnCancel != nil {
		d.OnCancel(id)
	}
}

// RippleEventKind identifies a lifecycle notification.
type RippleEventKind uint8

const (
	RippleEventStart  RippleEventKind = iota // AnimationDidStart
	RippleEventEnd                           // AnimationDidEnd
	RippleEventCancel                        // AnimationDidCancel
)

func (k RippleEventKind) String() string {
	switch k {
	case RippleEventStart:
		return "start"
	case RippleEventEnd:
		return "end"
	case RippleEventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// RippleEvent is a lifecycle notification as a value, for bridges that queue
// notifications (see the ecs package).
type RippleEvent struct {
	Kind     RippleEventKind
	RippleID RippleID
}

// EventSink receives ripple notifications as values.
type EventSink interface {
	EmitEvent(event RippleEvent)
}

// DelegateFromSink adapts an EventSink to a Delegate.
func DelegateFromSink(sink EventSink) Delegate {
	return sinkDelegate{sink: sink}
}

type sinkDelegate struct {
	sink EventSink
}

func (d sinkDelegate) AnimationDidStart(id RippleID) {
	d.sink.EmitEvent(RippleEvent{Kind: RippleEventStart, RippleID: id})
}

func (d sinkDelegate) AnimationDidEnd(id RippleID) {
	d.sink.EmitEvent(RippleEvent{Kind: RippleEventEnd, RippleID: id})
}

func (d sinkDelegate) AnimationDidCancel(id RippleID) {
	d.sink.EmitEvent(RippleEvent{Kind: RippleEventCancel, RippleID: id})
}
