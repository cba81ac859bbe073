package gestures

// Recognizer dispatches classified gestures to per-gesture callbacks.
//
// It wraps a [Detector] for hosts that prefer a callback surface over the
// event-list API:
//
//	rec := gestures.NewRecognizer()
//	rec.OnTap = func(t gestures.Tap) { handleTap(t.Position) }
//	rec.OnPanUpdate = func(u gestures.PanUpdate) { offset.ApplyDelta(-u.Delta.Y) }
//	...
//	rec.HandlePointer(event) // from the host's pointer stream
//	rec.Poll()               // once per frame while a pointer is held
//
// Nil callbacks are skipped. OnDoubleTap, when set, receives taps with
// Count >= 2 instead of OnTap.
type Recognizer struct {
	OnTap       func(Tap)
	OnDoubleTap func(Tap)
	OnLongPress func(LongPress)
	OnSwipe     func(Swipe)
	OnPanStart  func(PanStart)
	OnPanUpdate func(PanUpdate)
	OnPanEnd    func(PanEnd)

	detector *Detector
}

// NewRecognizer creates a recognizer over a detector with default thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{detector: NewDetector()}
}

// NewRecognizerWithConfig creates a recognizer with custom thresholds.
func NewRecognizerWithConfig(cfg DetectorConfig) *Recognizer {
	return &Recognizer{detector: NewDetectorWithConfig(cfg)}
}

// Detector exposes the underlying detector.
func (r *Recognizer) Detector() *Detector { return r.detector }

// HandlePointer feeds a raw pointer event and dispatches the resulting
// gestures to callbacks in classification order.
func (r *Recognizer) HandlePointer(event PointerEvent) {
	r.dispatch(r.detector.HandlePointer(event))
}

// Poll checks for a pending long press. Hosts call it once per frame
// while a pointer is held.
func (r *Recognizer) Poll() {
	if press, ok := r.detector.CheckLongPress(); ok {
		if r.OnLongPress != nil {
			r.OnLongPress(press)
		}
	}
}

func (r *Recognizer) dispatch(events []Event) {
	for _, event := range events {
		switch e := event.(type) {
		case Tap:
			if e.Count >= 2 && r.OnDoubleTap != nil {
				r.OnDoubleTap(e)
			} else if r.OnTap != nil {
				r.OnTap(e)
			}
		case LongPress:
			if r.OnLongPress != nil {
				r.OnLongPress(e)
			}
		case Swipe:
			if r.OnSwipe != nil {
				r.OnSwipe(e)
			}
		case PanStart:
			if r.OnPanStart != nil {
				r.OnPanStart(e)
			}
		case PanUpdate:
			if r.OnPanUpdate != nil {
				r.OnPanUpdate(e)
			}
		case PanEnd:
			if r.OnPanEnd != nil {
				r.OnPanEnd(e)
			}
		}
	}
}
