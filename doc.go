// Package bfetch sequences request and response transformations around a single transport call.
//
// # Overview
//
// A fetch in bfetch is three steps that always run in the same order:
//
//  1. the request, a plain [Request] map, is folded through the request reducers
//  2. the reduced request is handed to the [Transport], exactly once
//  3. the transport's [Response] is folded through the response reducers
//
// A minimal example:
//
//	fetch := bfetch.CreateFetch(transport, bfetch.Config{
//	    RequestReducers: []bfetch.Reducer[bfetch.Request]{
//	        bfetch.PrependHost("https://api.example.com"),
//	        bfetch.AddHeaders(bfetch.Headers{"Accept": "application/json"}),
//	    },
//	    ResponseReducers: []bfetch.Reducer[bfetch.Response]{
//	        bfetch.ReducerFunc[bfetch.Response](bfetch.RejectIfUnsuccessful),
//	    },
//	})
//
//	resp, err := fetch(ctx, "/items/42", bfetch.Request{"method": "GET"})
//
// # Reducers
//
// A [Reducer] takes a value and returns the next value of the same type, or an error. Reducers never modify their
// input: they return a shallow copy (see [Request.With]). [Reduce] and [Chain] fold a value through an ordered list
// of reducers:
//
//   - reducer N only runs after reducer N-1 returned, and it sees exactly what N-1 returned
//   - the first error stops the fold and is returned unchanged, later reducers never run
//   - an empty list returns the input value itself
//
// Reducers that complete asynchronously can be adapted with [Async], which waits for the [Outcome] delivered on a
// channel (or for the context to be done). Blocking functions need no adapter at all.
//
// # Built-in Reducers
//
//   - [PrependHost] turns an absolute path into a full url
//   - [AddHeaders] adds default headers from a static [Headers] value or a [HeadersFunc]
//   - [ProcessBody] replaces the request body, if there is one
//   - [RejectIfUnsuccessful] fails responses with a status outside of [200, 400)
//
// Contract violations of the built-in reducers are reported as [*ReducerError], which carries a message and a
// [Payload] with the offending request or response. Use [AsReducerError] to get at it.
//
// # Error Handling
//
// Nothing in this package recovers from an error. Errors from reducers and from the transport reach the caller of
// [Client.Fetch] as the exact same value, so errors.Is and identity comparisons keep working. A [Logger] can be
// configured to observe failures, tagged with the [Stage] they happened in.
//
// # Transport
//
// The transport is always injected explicitly, bfetch never reaches for a global client. Package bnet provides a
// net/http based implementation together with configuration, logging and tracing.
package bfetch
