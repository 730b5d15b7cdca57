package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dictforge/dictforge/internal/cli/config"
	"github.com/dictforge/dictforge/internal/dict"
	"github.com/dictforge/dictforge/internal/export"
	"github.com/dictforge/dictforge/internal/template"
)

// loadDictionary reads and validates the working dictionary file
func loadDictionary(cfg *config.Config) (*dict.Dictionary, error) {
	data, err := os.ReadFile(cfg.Dictionary)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dictionary file %s not found (run 'dictforge init' first)", cfg.Dictionary)
		}
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	d, err := export.ImportYAML(data)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", cfg.Dictionary, err)
	}

	logger.Debug("dictionary loaded",
		zap.String("path", cfg.Dictionary),
		zap.Int("fields", d.Len()))
	return d, nil
}

// saveDictionary persists the dictionary as a whole-file snapshot
func saveDictionary(cfg *config.Config, d *dict.Dictionary) error {
	data, err := (&export.YAMLRenderer{}).Render(d)
	if err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	if err := os.WriteFile(cfg.Dictionary, data, 0o644); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}

	logger.Debug("dictionary saved",
		zap.String("path", cfg.Dictionary),
		zap.Int("fields", d.Len()))
	return nil
}

// openStore creates the configured template store backend
func openStore(cfg *config.Config) (template.Store, error) {
	switch cfg.Templates.Driver {
	case "sqlite":
		return template.NewSQLiteStore(cfg.Templates.Path)
	default:
		return template.NewYAMLStore(cfg.Templates.Dir)
	}
}

// resolvePattern expands preset:<name> references against the regex
// preset library
func resolvePattern(raw string) (string, error) {
	if name, ok := strings.CutPrefix(raw, "preset:"); ok {
		pattern, found := dict.LookupPattern(name)
		if !found {
			return "", fmt.Errorf("unknown pattern preset %q (available: %s)",
				name, strings.Join(dict.PatternNames(), ", "))
		}
		return pattern, nil
	}
	return raw, nil
}

// parseRange parses a "min:max" flag value; either side may be empty for
// an open bound
func parseRange(raw string) (min, max *float64, err error) {
	lo, hi, found := strings.Cut(raw, ":")
	if !found {
		return nil, nil, fmt.Errorf("range must be min:max (either side may be empty), got %q", raw)
	}

	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("range min %q is not numeric", lo)
		}
		min = &v
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("range max %q is not numeric", hi)
		}
		max = &v
	}
	return min, max, nil
}

// splitValues parses a comma-separated allowed-values flag
func splitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
