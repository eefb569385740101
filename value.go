package bfetch

import (
	"encoding/json"
	"net/http"

	"github.com/samber/lo"
)

// Headers maps header names to a single value.
type Headers map[string]string

// Request is the open-ended description of an outgoing request as it flows through the request reducers. The
// conventional keys are "url", "headers", "body" and "method", any other key is passed to the transport untouched.
// Reducers must treat a Request as immutable and return a (shallow) copy when they change it.
type Request map[string]any

// URL returns the "url" field or an empty string if it is missing or not a string.
func (r Request) URL() string {
	s, _ := r["url"].(string)
	return s
}

// Headers returns the "headers" field, see [Request.LookupHeaders] for the recognized types. Unrecognized values
// result in a nil map.
func (r Request) Headers() Headers {
	h, _ := r.LookupHeaders()
	return h
}

// LookupHeaders returns the "headers" field and reports whether it holds a recognized type. Recognized are
// [Headers], map[string]string, [http.Header] (first value per name) and map[string]any with only string values. A
// missing or nil field is recognized as no headers.
func (r Request) LookupHeaders() (Headers, bool) {
	switch h := r["headers"].(type) {
	case nil:
		return nil, true
	case Headers:
		return h, true
	case map[string]string:
		return Headers(h), true
	case http.Header:
		out := make(Headers, len(h))
		for name, values := range h {
			if len(values) > 0 {
				out[name] = values[0]
			}
		}
		return out, true
	case map[string]any:
		out := make(Headers, len(h))
		for name, v := range h {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			out[name] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Body returns the "body" field and whether the request carries one at all.
func (r Request) Body() (any, bool) {
	b, ok := r["body"]
	return b, ok
}

// With returns a shallow copy of the request with key set to v.
func (r Request) With(key string, v any) Request {
	return Request(lo.Assign(r, Request{key: v}))
}

// Response is the open-ended description of a response as returned by the transport and passed through the
// response reducers. The conventional keys are "status", "statusText", "headers", "body" and "url".
type Response map[string]any

// Status returns the "status" field as an int. All integer and float kinds and [json.Number] are recognized, any
// other value reads as zero.
func (r Response) Status() int {
	switch s := r["status"].(type) {
	case int:
		return s
	case int8:
		return int(s)
	case int16:
		return int(s)
	case int32:
		return int(s)
	case int64:
		return int(s)
	case uint:
		return int(s)
	case uint8:
		return int(s)
	case uint16:
		return int(s)
	case uint32:
		return int(s)
	case uint64:
		return int(s)
	case float32:
		return int(s)
	case float64:
		return int(s)
	case json.Number:
		n, err := s.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}

// With returns a shallow copy of the response with key set to v.
func (r Response) With(key string, v any) Response {
	return Response(lo.Assign(r, Response{key: v}))
}
