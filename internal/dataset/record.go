package dataset

import (
	"bytes"
	"encoding/json"
	"io"
)

// Record is one supervised fine-tuning example.
type Record struct {
	Context  string `json:"context"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Encoder writes records as JSON lines. Each line has the keys context,
// question and answer in that order, separated the same way the reference
// dataset is: `{"context": "", "question": "...", "answer": "..."}`.
// HTML characters and non-ASCII text are written unescaped.
type Encoder struct {
	w    io.Writer
	line bytes.Buffer
	str  *json.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	e := &Encoder{w: w}
	e.str = json.NewEncoder(&e.line)
	e.str.SetEscapeHTML(false)
	return e
}

// Encode writes r followed by a newline.
func (e *Encoder) Encode(r Record) error {
	e.line.Reset()
	e.line.WriteString(`{"context": `)
	if err := e.writeString(r.Context); err != nil {
		return err
	}
	e.line.WriteString(`, "question": `)
	if err := e.writeString(r.Question); err != nil {
		return err
	}
	e.line.WriteString(`, "answer": `)
	if err := e.writeString(r.Answer); err != nil {
		return err
	}
	e.line.WriteString("}\n")
	_, err := e.w.Write(e.line.Bytes())
	return err
}

// writeString appends s as a JSON string literal without the encoder's trailing newline
func (e *Encoder) writeString(s string) error {
	if err := e.str.Encode(s); err != nil {
		return err
	}
	e.line.Truncate(e.line.Len() - 1)
	return nil
}
