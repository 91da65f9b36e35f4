package tokens

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"
)

// maxLineSize bounds a single JSONL line
const maxLineSize = 16 * 1024 * 1024

// Result summarizes a counting pass.
type Result struct {
	Total   int `json:"total_tokens"`
	Lines   int `json:"lines"`
	Counted int `json:"counted"`
	Skipped int `json:"skipped"`
}

// Options selects what CountField reads from each line.
type Options struct {
	Field string
	// SkipNonString skips values that are not JSON strings instead of counting their text form
	SkipNonString bool
}

// CountField sums the tokens of opts.Field across every JSONL line in r.
// Blank lines are ignored. Lines whose field is missing, null or empty are
// skipped. A line that is not a JSON object fails with INVALID_FORMAT naming
// its line number.
func CountField(ctx context.Context, r io.Reader, opts Options, counter Counter) (result0 Result, err error) {
	ctx, span := observability.TraceTokensFunction(ctx, "CountField")
	defer observability.FinishSpan(span, &err)

	var res Result
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Lines++

		var obj map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		if err := decodeObject(dec, &obj); err != nil {
			return Result{}, contextutils.WrapErrorf(contextutils.ErrInvalidFormat, "line %d: %v", lineNo, err)
		}

		text, ok := fieldText(obj[opts.Field], opts.SkipNonString)
		if !ok {
			res.Skipped++
			continue
		}
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return Result{}, contextutils.WrapErrorf(err, "line %d", lineNo)
		}
		res.Total += n
		res.Counted++
	}
	if err := sc.Err(); err != nil {
		return Result{}, contextutils.WrapErrorf(contextutils.ErrReadFailed, "failed to read line %d: %w", lineNo+1, err)
	}

	span.SetAttributes(observability.AttributeRecordCount(res.Counted))
	return res, nil
}

var (
	errNotObject    = errors.New("not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON value")
)

func decodeObject(dec *json.Decoder, obj *map[string]interface{}) error {
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if *obj == nil {
		return errNotObject
	}
	if _, err := dec.Token(); err != io.EOF {
		return errTrailingData
	}
	return nil
}

// fieldText returns the text to count for v and whether it should be counted.
// Booleans render as True or False. Other non-string values keep their JSON spelling.
func fieldText(v interface{}, skipNonString bool) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	}
	if skipNonString {
		return "", false
	}
	switch val := v.(type) {
	case bool:
		if val {
			return "True", true
		}
		return "False", true
	case json.Number:
		return val.String(), true
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}
