package model

import "strconv"

// ReadableTextColor picks a foreground hex color that stays legible on the
// given background. Contrast is judged on the YIQ-weighted luminance of the
// background (0–255 scale, threshold 140): light backgrounds get dark text,
// dark backgrounds get white text. Unparsable input is treated as dark.
func ReadableTextColor(background string) string {
	r, g, b, ok := parseHexColor(background)
	if !ok {
		return "#ffffff"
	}
	yiq := (r*299 + g*587 + b*114) / 1000
	if yiq >= 140 {
		return "#111827"
	}
	return "#ffffff"
}

func parseHexColor(s string) (r, g, b int, ok bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	// #abc expands to #aabbcc
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
