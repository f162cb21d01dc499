// Package track accounts for payload lifetimes across ownership handles.
//
// A Tracker implements ownership.Observer: it registers each payload when it
// gains its first owning handle and strikes it off when the payload is
// finalized, exposing the difference as a leak report. Allocation and free
// events are emitted as structured logs and OpenTelemetry metrics.
//
// Typical wiring in a test or a debug build:
//
//	tracker, _ := track.New(track.WithLogger(logger))
//	h := ownership.MakeSharedOf(conn, ownership.WithObserver[Conn](tracker))
//	defer func() {
//	    if tracker.Live() > 0 {
//	        for _, leak := range tracker.Leaks() {
//	            logger.Log(ctx, log.LevelError, "leaked payload", log.String("type", leak.Type))
//	        }
//	    }
//	}()
package track
