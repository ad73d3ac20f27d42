package theme

import (
	"maps"
	"strings"
)

type PatternKind string

const (
	PatternKey    PatternKind = "key"
	PatternWave   PatternKind = "wave"
	PatternSpiral PatternKind = "spiral"
)

var patterns = map[PatternKind]string{
	PatternKey:    `url("data:image/svg+xml,%3Csvg width='40' height='8' viewBox='0 0 40 8' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 0h8v8H0V0zm8 0h8v8H8V0zm8 0h8v8h-8V0zm8 0h8v8h-8V0zm8 0h8v8h-8V0z' fill='%23000' fillOpacity='0.1'/%3E%3C/svg%3E")`,
	PatternWave:   `url("data:image/svg+xml,%3Csvg width='60' height='20' viewBox='0 0 60 20' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 10c10 0 10-10 20-10s10 10 20 10 10-10 20-10v2c-10 0-10 10-20 10s-10-10-20-10-10 10-20 10z' fill='%23000' fillOpacity='0.1'/%3E%3C/svg%3E")`,
	PatternSpiral: `url("data:image/svg+xml,%3Csvg width='60' height='60' viewBox='0 0 60 60' xmlns='http://www.w3.org/2000/svg'%3E%3Cg fill='none' fillRule='evenodd'%3E%3Cg fill='%23000' fillOpacity='0.1'%3E%3Cpath d='M36 34v-4h-2v4h-4v2h4v4h2v-4h4v-2h-4zm0-30V0h-2v4h-4v2h4v4h2V6h4V4h-4zM6 34v-4H4v4H0v2h4v4h2v-4h4v-2H6zM6 4V0H4v4H0v2h4v4h2V6h4V4H6z'/%3E%3C/g%3E%3C/g%3E%3C/svg%3E")`,
}

// Pattern returns the decorative background for kind; unknown kinds get the
// Greek key.
func Pattern(kind string) string {
	if p, ok := patterns[PatternKind(strings.ToLower(kind))]; ok {
		return p
	}
	return patterns[PatternKey]
}

// Shades maps a shade step (50, 100 ... 900) to a hex color.
type Shades map[int]string

var palette = map[string]Shades{
	"marble": {
		50: "#fefefe", 100: "#fdfdfd", 200: "#fafafa", 300: "#f5f5f5", 400: "#efefef",
		500: "#e5e5e5", 600: "#d4d4d4", 700: "#a3a3a3", 800: "#525252", 900: "#262626",
	},
	"gold": {
		50: "#fffbeb", 100: "#fef3c7", 200: "#fde68a", 300: "#fcd34d", 400: "#fbbf24",
		500: "#f59e0b", 600: "#d97706", 700: "#b45309", 800: "#92400e", 900: "#78350f",
	},
	"aegean": {
		50: "#eff6ff", 100: "#dbeafe", 200: "#bfdbfe", 300: "#93c5fd", 400: "#60a5fa",
		500: "#3b82f6", 600: "#2563eb", 700: "#1d4ed8", 800: "#1e40af", 900: "#1e3a8a",
	},
}

// Palette returns a copy of the marble/gold/aegean palette; callers may
// mutate it freely.
func Palette() map[string]Shades {
	out := make(map[string]Shades, len(palette))
	for name, shades := range palette {
		out[name] = maps.Clone(shades)
	}
	return out
}
