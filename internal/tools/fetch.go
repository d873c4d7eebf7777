package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"promptdex/internal/extract"
)

// FetchArgs are the fetch-one tool's arguments.
type FetchArgs struct {
	Slug            string `json:"slug"`
	InstructionOnly bool   `json:"instruction_only"`
}

// FetchOne retrieves one registry document by slug. With
// instruction_only set, the extracted instruction payload is returned
// under a header naming the slug and source URL; if extraction finds
// nothing, the full document is returned behind a notice instead — that
// fallback is deliberate and is not an error.
func (h *Handlers) FetchOne(ctx context.Context, rawArgs map[string]any) (string, error) {
	var args FetchArgs
	if err := decodeArgs(rawArgs, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.Slug) == "" {
		return "", errors.New("slug is required")
	}

	doc, err := h.reg.FetchDocument(ctx, args.Slug)
	if err != nil {
		return "", err
	}

	if !args.InstructionOnly {
		return doc, nil
	}

	payload, ok := extract.Instruction(doc)
	if !ok {
		h.logger.Debug("instruction extraction missed, returning full document", "slug", args.Slug)
		return fmt.Sprintf(
			"Could not isolate the instruction section of %q; returning the full document.\n\n%s",
			args.Slug, doc,
		), nil
	}

	return fmt.Sprintf(
		"# Instruction from %s\nSource: %s\n\n%s",
		args.Slug, h.reg.DocumentURL(args.Slug), payload,
	), nil
}
