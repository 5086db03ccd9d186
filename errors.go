package entitycore

import "errors"

// ErrEntityIDExhausted is returned by Add once the World's id counter has
// reached the largest EntityID value; that value itself is never issued, so
// the counter never wraps.
var ErrEntityIDExhausted = errors.New("entitycore: entity id space exhausted")

// ErrUnknownEntity is returned (wrapped) by Remove for an EntityID that
// does not (or no longer) names a live entity. Extract reports the same
// condition as ok=false rather than as an error.
var ErrUnknownEntity = errors.New("entitycore: unknown entity id")

// ErrShutdownTimeout is returned by World.Close when the logger has not
// finished flushing within cfg.ShutdownTimeout.
var ErrShutdownTimeout = errors.New("entitycore: shutdown timed out")
