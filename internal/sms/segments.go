package sms

import "unicode/utf8"

// Carrier segmentation rules: a message up to 160 characters fits one
// segment; anything longer is concatenated in 153-character windows because
// each part carries a 7-byte user-data header.
const (
	SingleSegmentLimit = 160
	concatWindow       = 153
)

// SegmentInfo describes how a message body splits into SMS segments.
type SegmentInfo struct {
	Length   int `json:"length"`
	Limit    int `json:"limit"`
	Segments int `json:"segments"`
}

// Segments computes the segment breakdown for a message body. Length is
// counted in runes so multibyte content is not over-counted. Pure; usable for
// display and cost estimation alike.
func Segments(content string) SegmentInfo {
	n := utf8.RuneCountInString(content)
	info := SegmentInfo{Length: n, Limit: SingleSegmentLimit}

	if n <= SingleSegmentLimit {
		info.Segments = 1
	} else {
		info.Segments = (n + concatWindow - 1) / concatWindow
	}
	return info
}
