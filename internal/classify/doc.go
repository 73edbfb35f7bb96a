// Package classify decides whether a call's result type must be used.
//
// # Classification
//
// [Classifier.Classify] maps a result type to exactly one [Kind]:
//
//	┌──────────────────────────────┬───────────────┐
//	│ result type                  │ Kind          │
//	├──────────────────────────────┼───────────────┤
//	│ (T, error)                   │ Direct        │
//	│ (T, bool)                    │ Direct        │
//	│ error                        │ Direct        │
//	│ named sum type               │ Direct        │
//	│ <-chan error, chan error     │ WrappedAsync  │
//	│ <-chan SumType               │ WrappedAsync  │
//	│ int, (), (error, int), ...   │ NotApplicable │
//	└──────────────────────────────┴───────────────┘
//
// Classification depends on the type only; whether the value is discarded is
// decided separately by the discard package.
//
// # Async Wrapper
//
// The channel is the only asynchronous wrapper. It is recognized by its type
// constructor: any type whose underlying type is a channel that permits
// receiving qualifies, and a user type that merely shares a wrapper's name
// (type Future[T any] struct{...}) never does. Send-only channels cannot be
// awaited and are NotApplicable.
package classify
