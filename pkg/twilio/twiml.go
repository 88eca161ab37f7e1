package twilio

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
)

// ContentType is what the voice markup parser expects.
const ContentType = "text/xml; charset=utf-8"

// Verb is one TwiML instruction.
type Verb interface {
	verb()
}

// Dial connects the caller to Number.
type Dial struct {
	XMLName  xml.Name `xml:"Dial"`
	CallerID string   `xml:"callerId,attr,omitempty"`
	Number   string   `xml:",chardata"`
}

// Say reads Text to the caller.
type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

// Reject refuses the call without answering it.
type Reject struct {
	XMLName xml.Name `xml:"Reject"`
	Reason  string   `xml:"reason,attr,omitempty"`
}

// Hangup ends the call.
type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

func (Dial) verb()   {}
func (Say) verb()    {}
func (Reject) verb() {}
func (Hangup) verb() {}

type response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []Verb
}

// Render produces a complete TwiML document.
func Render(verbs ...Verb) (string, error) {
	for _, v := range verbs {
		if d, ok := v.(Dial); ok && strings.TrimSpace(d.Number) == "" {
			return "", errors.New("twiml: dial requires a number")
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(response{Verbs: verbs}); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DialResponse connects the caller to number.
func DialResponse(number string) (string, error) {
	return Render(Dial{Number: number})
}
