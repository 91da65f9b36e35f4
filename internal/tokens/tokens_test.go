package tokens

import (
	"context"
	"errors"
	"strings"
	"testing"

	contextutils "wordacy/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCounter counts whitespace-separated words so tests need no BPE files
type wordCounter struct {
	seen []string
}

func (c *wordCounter) CountTokens(_ context.Context, text string) (int, error) {
	c.seen = append(c.seen, text)
	return len(strings.Fields(text)), nil
}

type failingCounter struct{}

func (failingCounter) CountTokens(context.Context, string) (int, error) {
	return 0, contextutils.ErrTokenizerUnavailable
}

const sample = `{"context": "", "question": "Give me the base form of the verb \"go\".", "answer": "go"}

{"context": "", "question": "What is the past tense of the verb \"go\"?", "answer": "went"}
{"context": "", "question": "", "answer": "gone"}
{"context": "", "answer": "goes"}
{"context": "", "question": null, "answer": "going"}
{"context": "", "question": 42, "answer": "x"}
{"context": "", "question": true, "answer": "y"}
{"context": "", "question": ["a", "b"], "answer": "z"}
`

func TestCountField(t *testing.T) {
	counter := &wordCounter{}
	res, err := CountField(context.Background(), strings.NewReader(sample), Options{Field: "question"}, counter)
	require.NoError(t, err)

	assert.Equal(t, 8, res.Lines)
	assert.Equal(t, 5, res.Counted)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 9+9+1+1+1, res.Total)
	assert.Equal(t, []string{
		`Give me the base form of the verb "go".`,
		`What is the past tense of the verb "go"?`,
		"42",
		"True",
		`["a","b"]`,
	}, counter.seen)
}

func TestCountField_SkipNonString(t *testing.T) {
	counter := &wordCounter{}
	res, err := CountField(context.Background(), strings.NewReader(sample), Options{Field: "question", SkipNonString: true}, counter)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Counted)
	assert.Equal(t, 6, res.Skipped)
	assert.Equal(t, 18, res.Total)
}

func TestCountField_OtherField(t *testing.T) {
	res, err := CountField(context.Background(), strings.NewReader(sample), Options{Field: "answer"}, &wordCounter{})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Counted)
	assert.Equal(t, 8, res.Total)
}

func TestCountField_InvalidLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{name: "broken json", input: "{\"question\": \"a\"}\n{\"question\": \n", line: "line 2"},
		{name: "array line", input: "\n\n[1, 2]\n", line: "line 3"},
		{name: "null line", input: "null\n", line: "line 1"},
		{name: "trailing data", input: "{\"question\": \"a\"} {}\n", line: "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountField(context.Background(), strings.NewReader(tt.input), Options{Field: "question"}, &wordCounter{})
			require.Error(t, err)
			assert.Equal(t, contextutils.ErrorCodeInvalidFormat, contextutils.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestCountField_CounterError(t *testing.T) {
	_, err := CountField(context.Background(), strings.NewReader(sample), Options{Field: "question"}, failingCounter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, contextutils.ErrTokenizerUnavailable))
	assert.Contains(t, err.Error(), "line 1")
}

func TestCountField_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CountField(ctx, strings.NewReader(sample), Options{Field: "question"}, &wordCounter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		name      string
		tokenizer string
		model     string
		encoding  string
		want      string
		wantCode  contextutils.ErrorCode
	}{
		{name: "defaults", tokenizer: "tiktoken", want: DefaultEncoding},
		{name: "empty tokenizer", want: DefaultEncoding},
		{name: "gpt2 ignores model", tokenizer: "gpt2", model: "gpt-4o-mini", want: "r50k_base"},
		{name: "gpt2 case insensitive", tokenizer: "GPT2", want: "r50k_base"},
		{name: "encoding wins", tokenizer: "tiktoken", model: "gpt-4o-mini", encoding: "p50k_base", want: "p50k_base"},
		{name: "exact model", tokenizer: "tiktoken", model: "gpt-4", want: "cl100k_base"},
		{name: "prefixed model", tokenizer: "tiktoken", model: "gpt-4o-mini", want: "o200k_base"},
		{name: "dated model", tokenizer: "tiktoken", model: "gpt-3.5-turbo-0125", want: "cl100k_base"},
		{name: "unknown model", tokenizer: "tiktoken", model: "llama-3", wantCode: contextutils.ErrorCodeTokenizerUnavailable},
		{name: "unknown tokenizer", tokenizer: "sentencepiece", wantCode: contextutils.ErrorCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEncoding(tt.tokenizer, tt.model, tt.encoding)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, contextutils.GetErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTiktokenCounter_UnknownEncoding(t *testing.T) {
	_, err := NewTiktokenCounter("no_such_base")
	require.Error(t, err)
	assert.Equal(t, contextutils.ErrorCodeTokenizerUnavailable, contextutils.GetErrorCode(err))
}
