package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractMessage pulls a human-readable message out of a backend response
// body. Two shapes are recognised:
//
//	{"message": "ValidationError: email: already taken"}  -> "already taken"
//	{"message": {"phone_number": "Invalid phone number"}}  -> "Invalid phone number"
//
// A string message is reduced to the text after its last colon. For a mapping
// the first value in document order is used. ok is false when the body has
// neither shape or the result is empty.
func ExtractMessage(body []byte) (msg string, ok bool) {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}

	raw := bytes.TrimSpace(envelope.Message)
	if len(raw) == 0 {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		msg = strings.TrimSpace(s[strings.LastIndex(s, ":")+1:])
	case '{':
		msg = firstValue(raw)
	}

	return msg, msg != ""
}

// firstValue returns the first value of a JSON object, preserving key order,
// which a map decode would lose.
func firstValue(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return ""
	}
	if !dec.More() {
		return ""
	}
	if _, err := dec.Token(); err != nil {
		return ""
	}

	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	var scalar any
	if err := json.Unmarshal(v, &scalar); err == nil {
		switch scalar.(type) {
		case float64, bool:
			return fmt.Sprint(scalar)
		case nil:
			return ""
		}
	}
	return string(v)
}
