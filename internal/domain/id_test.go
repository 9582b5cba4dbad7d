package domain

import "testing"

func TestFormatComplaintID(t *testing.T) {
	tests := []struct {
		name string
		seq  int64
		want string
	}{
		{name: "first", seq: 1, want: "C001"},
		{name: "two digits", seq: 42, want: "C042"},
		{name: "three digits", seq: 999, want: "C999"},
		{name: "widens past padding", seq: 1000, want: "C1000"},
		{name: "keeps widening", seq: 12345, want: "C12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatComplaintID(tt.seq); got != tt.want {
				t.Fatalf("FormatComplaintID(%d) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestFormatPilgrimID(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{seq: 101, want: "P-101"},
		{seq: 102, want: "P-102"},
		{seq: 1500, want: "P-1500"},
	}

	for _, tt := range tests {
		if got := FormatPilgrimID(tt.seq); got != tt.want {
			t.Fatalf("FormatPilgrimID(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestCompletionPhotoURL(t *testing.T) {
	if got := CompletionPhotoURL("proof.jpg"); got != "uploads/proof.jpg" {
		t.Fatalf("got %q", got)
	}
	if got := CompletionPhotoURL(""); got != "uploads/default_proof.jpg" {
		t.Fatalf("got %q", got)
	}
}
