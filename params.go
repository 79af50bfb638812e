package pulls

import (
	"fmt"
	"strings"
)

// Params is the per-call parameter mapping supplied by the caller.
// Keys are normalized and filtered against an allow-list before dispatch;
// unrecognized keys are silently dropped rather than rejected. Values are
// scalars (strings, numbers, booleans).
type Params map[string]any

// requestParams is the allow-list for pull-request operations.
var requestParams = allowList(
	"title",
	"body",
	"base",
	"head",
	"state",
	"issue",
	"commit_message",
	"mime_type",
	"resource",
	"client_id",
	"client_secret",
)

// commentParams is the allow-list for review-comment operations.
var commentParams = allowList(
	"body",
	"commit_id",
	"path",
	"position",
	"in_reply_to",
	"mime_type",
	"resource",
	"client_id",
	"client_secret",
)

// validStates enumerates the values accepted for the "state" parameter.
var validStates = []string{"open", "closed"}

func allowList(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// normalizeKey folds a caller-supplied key to its canonical form:
// surrounding whitespace is trimmed, the key is lower-cased, and dashes
// fold to underscores ("Commit-Message" becomes "commit_message").
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "-", "_")
}

// filterKnown normalizes the keys of in and returns a new Params holding
// only the keys present in allowed. The input is never mutated; unknown
// keys are dropped without error. All operations share this one helper so
// the filtering policy lives in a single place.
func filterKnown(allowed map[string]struct{}, in Params) Params {
	out := make(Params, len(in))
	for key, value := range in {
		normalized := normalizeKey(key)
		if _, ok := allowed[normalized]; ok {
			out[normalized] = value
		}
	}
	return out
}

// validateState checks the "state" parameter, when present, against its
// enumerated set. Unlike key filtering, an out-of-range value is an error:
// the caller asked for something the API defines and got it wrong, which
// must not be silently dropped.
func validateState(params Params) error {
	raw, ok := params["state"]
	if !ok {
		return nil
	}

	state := fmt.Sprintf("%v", raw)
	for _, valid := range validStates {
		if state == valid {
			return nil
		}
	}

	return newInvalidValueError("state", state, validStates)
}
