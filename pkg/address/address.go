// Package address implements the gdrive:// resource address grammar.
//
// Supported forms:
//
//	gdrive:///<id>                                 legacy, bypasses the cache
//	gdrive://docs/<id>/content
//	gdrive://docs/<id>/structure
//	gdrive://docs/<id>/chunk/<start>-<end>
//	gdrive://sheets/<id>/values/<url-encoded-range>
//	gdrive://files/<id>/content
//	gdrive://files/<id>/content/<start>-<end>
//
// Parse is total: every failure mode is reported through Parsed.Valid and
// Parsed.Error, never through a panic or a Go error.
package address

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const Scheme = "gdrive"

type Kind string

const (
	KindLegacy Kind = "legacy"
	KindDoc    Kind = "doc"
	KindSheet  Kind = "sheet"
	KindFile   Kind = "file"
)

type Action string

const (
	ActionContent   Action = "content"
	ActionChunk     Action = "chunk"
	ActionStructure Action = "structure"
	ActionValues    Action = "values"
)

// Parsed is the validated form of a resource address. When Valid is false,
// Error holds the reason and every other field is zero.
type Parsed struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`

	Kind       Kind   `json:"kind,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
	Action     Action `json:"action,omitempty"`

	// Chunk range, half-open [Start, End). Only meaningful when HasRange.
	HasRange bool `json:"has_range,omitempty"`
	Start    int  `json:"start,omitempty"`
	End      int  `json:"end,omitempty"`

	// A1-notation range for sheet values addresses, already URL-decoded.
	Range string `json:"range,omitempty"`
}

type paramRule int

const (
	paramNone paramRule = iota
	paramChunkRequired
	paramChunkOptional
	paramRangeRequired
)

// rules is the full (type, action) table of the grammar. Adding a resource
// type or action is an edit here, not a new branch in Parse.
var rules = map[string]map[Action]paramRule{
	"docs": {
		ActionContent:   paramNone,
		ActionStructure: paramNone,
		ActionChunk:     paramChunkRequired,
	},
	"sheets": {
		ActionValues: paramRangeRequired,
	},
	"files": {
		ActionContent: paramChunkOptional,
	},
}

var kindOf = map[string]Kind{
	"docs":   KindDoc,
	"sheets": KindSheet,
	"files":  KindFile,
}

var supportedTypes = "docs, sheets, files"

func invalid(format string, args ...any) Parsed {
	return Parsed{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// Parse converts a resource address string into its validated form. All range
// and parameter validation happens here so resolvers never re-check it.
func Parse(uri string) Parsed {
	prefix := Scheme + "://"
	if !strings.HasPrefix(uri, prefix) {
		return invalid("invalid scheme: address must start with %s", prefix)
	}
	rest := strings.TrimPrefix(uri, prefix)

	// Legacy form gdrive:///<id>
	if strings.HasPrefix(rest, "/") {
		id := strings.TrimPrefix(rest, "/")
		if id == "" {
			return invalid("empty identifier in legacy address")
		}
		return Parsed{Valid: true, Kind: KindLegacy, ResourceID: id}
	}

	// Structured form gdrive://<type>/<id>/<action>[/<param>]
	segments := strings.SplitN(rest, "/", 4)
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return invalid("missing resource type or id in address")
	}
	resourceType, id := segments[0], segments[1]

	actions, ok := rules[resourceType]
	if !ok {
		return invalid("unsupported resource type %q (supported: %s)", resourceType, supportedTypes)
	}

	if len(segments) < 3 || segments[2] == "" {
		return invalid("missing action for %s address", resourceType)
	}
	action := Action(segments[2])

	rule, ok := actions[action]
	if !ok {
		return invalid("unsupported action %q for resource type %q", segments[2], resourceType)
	}

	param := ""
	if len(segments) == 4 {
		param = segments[3]
	}

	parsed := Parsed{
		Valid:      true,
		Kind:       kindOf[resourceType],
		ResourceID: id,
		Action:     action,
	}

	switch rule {
	case paramNone:
		return parsed
	case paramChunkRequired:
		return withChunkRange(parsed, param)
	case paramChunkOptional:
		if param == "" {
			return parsed
		}
		return withChunkRange(parsed, param)
	case paramRangeRequired:
		if param == "" {
			return invalid("missing range for sheets values address")
		}
		decoded, err := url.PathUnescape(param)
		if err != nil {
			return invalid("invalid range encoding %q", param)
		}
		parsed.Range = decoded
		return parsed
	}
	return invalid("unsupported action %q for resource type %q", segments[2], resourceType)
}

func withChunkRange(parsed Parsed, param string) Parsed {
	startRaw, endRaw, ok := strings.Cut(param, "-")
	if !ok || startRaw == "" || endRaw == "" {
		return invalid("malformed chunk range %q (expected <start>-<end>)", param)
	}
	start, err := strconv.Atoi(startRaw)
	if err != nil || start < 0 {
		return invalid("invalid chunk range start %q", startRaw)
	}
	end, err := strconv.Atoi(endRaw)
	if err != nil {
		return invalid("invalid chunk range end %q", endRaw)
	}
	if end <= start {
		return invalid("chunk range end (%d) must be greater than start (%d)", end, start)
	}
	parsed.HasRange = true
	parsed.Start = start
	parsed.End = end
	return parsed
}

// FormatContent builds the whole-content address for a cached resource.
func FormatContent(resourceType, id string) string {
	return fmt.Sprintf("%s://%s/%s/content", Scheme, resourceType, id)
}

// FormatChunk builds a chunk address over a cached resource's text.
func FormatChunk(resourceType, id string, start, end int) string {
	action := "chunk"
	if resourceType == "files" {
		action = "content"
	}
	return fmt.Sprintf("%s://%s/%s/%s/%d-%d", Scheme, resourceType, id, action, start, end)
}

// FormatValues builds a sheet values address, URL-encoding the A1 range.
func FormatValues(id, a1Range string) string {
	return fmt.Sprintf("%s://sheets/%s/values/%s", Scheme, id, url.PathEscape(a1Range))
}
