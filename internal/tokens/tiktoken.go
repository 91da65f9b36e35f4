// Package tokens counts tokenizer tokens in one field of a JSONL dataset.
package tokens

import (
	"context"
	"strings"

	contextutils "wordacy/internal/utils"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer names accepted by ResolveEncoding.
const (
	TokenizerTiktoken = "tiktoken"
	TokenizerGPT2     = "gpt2"
)

const (
	// DefaultEncoding is used when neither an encoding nor a model is given
	DefaultEncoding = "cl100k_base"
	// GPT2Encoding is the byte-level BPE vocabulary of the original GPT-2 tokenizer
	GPT2Encoding = "r50k_base"
)

// Counter counts the tokens in a piece of text.
type Counter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// TiktokenCounter implements Counter using the tiktoken-go library.
type TiktokenCounter struct {
	encodingName string
	tke          *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the named encoding.
func NewTiktokenCounter(encodingName string) (*TiktokenCounter, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	tke, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrTokenizerUnavailable, "failed to load encoding %q: %v", encodingName, err)
	}
	return &TiktokenCounter{encodingName: encodingName, tke: tke}, nil
}

// NewCounter resolves the encoding for tokenizer, model and encoding, then loads it.
func NewCounter(tokenizer, model, encoding string) (*TiktokenCounter, error) {
	name, err := ResolveEncoding(tokenizer, model, encoding)
	if err != nil {
		return nil, err
	}
	return NewTiktokenCounter(name)
}

// CountTokens counts the number of tokens in text.
func (tc *TiktokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	return len(tc.tke.Encode(text, nil, nil)), nil
}

// Encoding returns the name of the encoding in use.
func (tc *TiktokenCounter) Encoding() string {
	return tc.encodingName
}

// ResolveEncoding picks the encoding name. The gpt2 tokenizer always maps to
// r50k_base. Otherwise an explicit encoding wins over a model name, and with
// neither the default encoding is used.
func ResolveEncoding(tokenizer, model, encoding string) (string, error) {
	switch strings.ToLower(tokenizer) {
	case TokenizerGPT2:
		return GPT2Encoding, nil
	case TokenizerTiktoken, "":
	default:
		return "", contextutils.WrapErrorf(contextutils.ErrInvalidInput, "unknown tokenizer %q (want %s or %s)", tokenizer, TokenizerTiktoken, TokenizerGPT2)
	}

	if encoding != "" {
		return encoding, nil
	}
	if model == "" {
		return DefaultEncoding, nil
	}
	if name, ok := EncodingForModel(model); ok {
		return name, nil
	}
	return "", contextutils.WrapErrorf(contextutils.ErrTokenizerUnavailable, "no known encoding for model %q; pass an encoding instead", model)
}

// EncodingForModel looks up the encoding used by an OpenAI model name.
func EncodingForModel(model string) (string, bool) {
	if name, ok := modelToEncoding[model]; ok {
		return name, true
	}
	for _, p := range modelPrefixToEncoding {
		if strings.HasPrefix(model, p.prefix) {
			return p.encoding, true
		}
	}
	return "", false
}

var modelToEncoding = map[string]string{
	"gpt-4o":                 "o200k_base",
	"gpt-4":                  "cl100k_base",
	"gpt-3.5-turbo":          "cl100k_base",
	"gpt-3.5":                "cl100k_base",
	"text-embedding-ada-002": "cl100k_base",
	"text-embedding-3-small": "cl100k_base",
	"text-embedding-3-large": "cl100k_base",
	"text-davinci-003":       "p50k_base",
	"text-davinci-002":       "p50k_base",
	"text-davinci-001":       "r50k_base",
	"code-davinci-002":       "p50k_base",
	"code-cushman-001":       "p50k_base",
	"davinci":                "r50k_base",
	"curie":                  "r50k_base",
	"babbage":                "r50k_base",
	"ada":                    "r50k_base",
	"gpt2":                   "r50k_base",
}

// checked in order, so longer prefixes come first
var modelPrefixToEncoding = []struct {
	prefix   string
	encoding string
}{
	{"gpt-4o-", "o200k_base"},
	{"gpt-4-", "cl100k_base"},
	{"gpt-3.5-turbo-", "cl100k_base"},
	{"gpt-35-turbo-", "cl100k_base"},
	{"ft:gpt-4o", "o200k_base"},
	{"ft:gpt-4", "cl100k_base"},
	{"ft:gpt-3.5-turbo", "cl100k_base"},
	{"ft:davinci-002", "cl100k_base"},
	{"ft:babbage-002", "cl100k_base"},
}
