package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStyle = errors.New("unknown style")

const customizationsHeader = "IMPORTANT CUSTOMIZATIONS:"

// builds the generator instruction for a style; pure and deterministic
func Build(style string, c *Customizations) (string, error) {
	s, ok := Lookup(style)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	phrases := c.phrases()
	if len(phrases) == 0 {
		return s.Paragraph, nil
	}

	var b strings.Builder
	b.WriteString(s.Paragraph)
	b.WriteString("\n\n")
	b.WriteString(customizationsHeader)

	for _, p := range phrases {
		b.WriteString(" ")
		b.WriteString(p)
	}

	return b.String(), nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
