package intent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vzahanych/weather-answer/internal/locale"
)

// WriteSlots writes one Rhasspy slot file per vocabulary of l into dir and
// returns the written paths in name order.
func WriteSlots(dir string, l *locale.Locale) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}

	slots := l.Slots()
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		values := append([]string(nil), slots[name]...)
		sort.Strings(values)

		path := filepath.Join(dir, name)
		content := strings.Join(values, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return paths, fmt.Errorf("write slot %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
