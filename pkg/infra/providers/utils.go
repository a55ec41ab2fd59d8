package providers

import "strings"

const DefaultMaxTokens = 1024

func FormatInstructions(instr []string) string {
	if len(instr) == 0 {
		return "[Instructions]\n"
	}

	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// SystemText merges the system prompt and the instruction list into the single
// system message sent to every provider.
func SystemText(config *Config) string {
	system := strings.TrimSpace(config.SystemPrompt)
	if len(config.Instructions) == 0 {
		return system
	}
	if system == "" {
		return strings.TrimSpace(FormatInstructions(config.Instructions))
	}
	return system + "\n\n" + strings.TrimSpace(FormatInstructions(config.Instructions))
}

// MaxTokens returns the configured budget or DefaultMaxTokens.
func MaxTokens(config *Config) int64 {
	if config.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return int64(config.MaxTokens)
}

// JoinText concatenates non-empty segments with newlines and trims the result.
func JoinText(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
