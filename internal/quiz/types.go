package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a quiz or a question. The API is free to send identifiers
// as JSON strings or numbers; ID keeps the original form so that it is
// echoed back unchanged in result payloads.
type ID struct {
	value   string
	numeric bool
}

// StringID returns an ID that encodes as a JSON string.
func StringID(s string) ID {
	return ID{value: s}
}

// NumberID returns an ID that encodes as a JSON number.
func NumberID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) String() string {
	return id.value
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID{value: n.String(), numeric: n != ""}
	return nil
}

// Quiz is the summary entity shown in the quiz list.
type Quiz struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// Question is a prompt with an ordered set of options and one correct
// option index. CorrectOption is assumed to index into Options.
type Question struct {
	ID            ID       `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Detail is a quiz together with its questions, fetched lazily per quiz.
type Detail struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}

// Result is the locally computed score of a submission.
type Result struct {
	Correct int
	Total   int
}
