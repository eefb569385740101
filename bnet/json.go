package bnet

import (
	"context"

	"github.com/advdv/bfetch"
	"github.com/tidwall/gjson"
)

// ExtractJSON returns a response reducer that replaces the response body with the value found at path, using gjson
// syntax. An empty path replaces the body with the whole decoded document. Bodies that are not valid JSON, and
// paths that do not exist, fail with a *bfetch.ReducerError.
func ExtractJSON(path string) bfetch.Reducer[bfetch.Response] {
	return bfetch.ReducerFunc[bfetch.Response](func(_ context.Context, resp bfetch.Response) (bfetch.Response, error) {
		var raw []byte
		switch body := resp["body"].(type) {
		case []byte:
			raw = body
		case string:
			raw = []byte(body)
		}

		if !gjson.ValidBytes(raw) {
			return nil, bfetch.NewReducerError("ExtractJSON() requires a JSON body", bfetch.Payload{"response": resp})
		}

		if path == "" {
			return resp.With("body", gjson.ParseBytes(raw).Value()), nil
		}

		result := gjson.GetBytes(raw, path)
		if !result.Exists() {
			return nil, bfetch.NewReducerError("ExtractJSON() path not found", bfetch.Payload{
				"response": resp,
				"path":     path,
			})
		}

		return resp.With("body", result.Value()), nil
	})
}
