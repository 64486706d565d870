package game

import "context"

// Run drives s from src until done reports true for a frame, maxTicks steps
// have run, or ctx is cancelled. Every frame goes to sink when it is not
// nil. The last frame is returned; the error is ctx.Err() on cancellation.
func Run(ctx context.Context, s *Session, src IntentSource, sink RenderSink, done func(Frame) bool, maxTicks int) (Frame, error) {
	last := s.Frame()
	for i := 0; maxTicks <= 0 || i < maxTicks; i++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		default:
		}

		last = s.Step(src.Sample())
		if sink != nil {
			sink.SubmitFrame(last)
		}
		if done != nil && done(last) {
			return last, nil
		}
	}
	return last, nil
}
