// Package behavior provides composable pipeline behaviors for request
// dispatch.
//
// A [Behavior] is a function that wraps handler execution. Behaviors are
// composed into a chain using [Chain] and applied around each dispatch.
// They are applied right-to-left: the first behavior in the slice is the
// outermost wrapper.
//
//	// logging → validation → handler
//	chain := behavior.Chain(behavior.Logging(logger), behavior.Validation(vals))
//
// # Built-in Behaviors
//
//   - [Logging] — times each request; info below the slow threshold, warn at
//     or above it, error on failure
//   - [Validation] — runs the validators bound to the request type and
//     short-circuits with *ValidationError on the first non-empty result set
//   - [Caching] — serves cacheable queries from a cache.Store, populating it
//     on miss
//   - [Recover] — catches panics and converts them to errors
//   - [Timeout] — cancels the dispatch context after a configured duration
//   - [Tracing] — wraps execution in an OpenTelemetry span
//   - [Metrics] — records per-request duration and outcome counters
//   - [Throttle] — blocks on a rate.Limiter before continuing
//
// # Writing Custom Behaviors
//
//	func MyBehavior() behavior.Behavior {
//	    return func(ctx context.Context, req any, next behavior.Next) (any, error) {
//	        // pre-processing
//	        out, err := next(ctx)
//	        // post-processing
//	        return out, err
//	    }
//	}
//
// A behavior has three legal shapes: pass-through (call next once),
// short-circuit (never call next, synthesize a response), or transform
// (call next, then inspect or alter the outcome). Behaviors MUST propagate
// errors from next unchanged unless their documented contract says
// otherwise; none of the built-ins swallow.
package behavior
