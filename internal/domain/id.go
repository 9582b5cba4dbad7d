package domain

import "fmt"

// FormatPilgrimID renders a sequence value as a human-readable pilgrim
// ID. The sequence starts at 101, so the first registration gets
// "P-101".
func FormatPilgrimID(seq int64) string {
	return fmt.Sprintf("P-%d", seq)
}

// FormatComplaintID renders a sequence value as a complaint ID with a
// zero-padded three digit counter. The padding does not cap the
// counter: values past 999 simply render with more digits.
func FormatComplaintID(seq int64) string {
	return fmt.Sprintf("C%03d", seq)
}

// CompletionPhotoURL maps an uploaded photo filename to its stored
// path. File upload itself is mocked; an empty filename falls back to
// a default proof image.
func CompletionPhotoURL(filename string) string {
	if filename == "" {
		filename = "default_proof.jpg"
	}
	return "uploads/" + filename
}
