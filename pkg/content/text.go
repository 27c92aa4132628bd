package content

import "strings"

// Text carries a raw string value such as a query parameter.
type Text string

func (t Text) IsNull() bool { return t == "null" }

// Bool applies ParseBool, so it is always defined for text.
func (t Text) Bool() (bool, bool) { return ParseBool(string(t)), true }

func (t Text) Int() (int, bool)        { return ParseInt(string(t)) }
func (t Text) Uint() (uint, bool)      { return ParseUint(string(t)) }
func (t Text) Float() (float32, bool)  { return ParseFloat(string(t)) }
func (t Text) Double() (float64, bool) { return ParseDouble(string(t)) }
func (t Text) Text() (string, bool)    { return string(t), true }

// Array returns a single-element slice holding t.
// Use Fields to split a comma-separated list.
func (t Text) Array() ([]Node, bool) { return []Node{t}, true }

func (t Text) Object() (map[string]Node, bool) { return nil, false }

// JSON parses the text as a JSON document.
func (t Text) JSON() (JSONValue, bool) {
	v, err := ParseJSON([]byte(t))
	if err != nil {
		return JSONValue{}, false
	}
	return v, true
}

// Fields splits the text on commas. Empty elements are kept.
func (t Text) Fields() []Node {
	parts := strings.Split(string(t), ",")
	nodes := make([]Node, len(parts))
	for i, p := range parts {
		nodes[i] = Text(p)
	}
	return nodes
}

func (Text) node() {}
