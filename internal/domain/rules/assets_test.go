package rules

import (
	"strings"
	"testing"

	"github.com/dn1t/dutlife-api/internal/domain/model"
)

const origin = "https://playentry.org"

func TestUploadPathSharding(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		imageType string
		want      string
		ok        bool
	}{
		{name: "normal", filename: "abcd1234", imageType: "png", want: "/uploads/ab/cd/abcd1234.png", ok: true},
		{name: "exactly four chars", filename: "abcd", imageType: "jpg", want: "/uploads/ab/cd/abcd.jpg", ok: true},
		{name: "too short", filename: "abc", imageType: "png", ok: false},
		{name: "empty filename", filename: "", imageType: "png", ok: false},
		{name: "empty image type", filename: "abcd1234", imageType: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UploadPath(tt.filename, tt.imageType)
			if ok != tt.ok {
				t.Fatalf("unexpected ok: got %v want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("unexpected path: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestUploadPathShardSegments(t *testing.T) {
	filename := "f00dcafe42"
	path, ok := UploadPath(filename, "webp")
	if !ok {
		t.Fatalf("upload path should build for %q", filename)
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) != 4 {
		t.Fatalf("unexpected segment count: %d (%q)", len(parts), path)
	}
	if parts[1] != filename[0:2] || parts[2] != filename[2:4] {
		t.Fatalf("shard segments %q/%q do not match filename prefix %q", parts[1], parts[2], filename)
	}
}

func TestProfileImageURL(t *testing.T) {
	got := ProfileImageURL(origin, &model.ImageRef{Filename: "abcd1234", ImageType: "png"})
	if got != origin+"/uploads/ab/cd/abcd1234.png" {
		t.Fatalf("unexpected profile image url: %q", got)
	}

	if got := ProfileImageURL(origin, nil); got != origin+DefaultUserThumbPath {
		t.Fatalf("missing profile image should use default avatar, got %q", got)
	}

	if got := ProfileImageURL(origin, &model.ImageRef{Filename: "ab", ImageType: "png"}); got != origin+DefaultUserThumbPath {
		t.Fatalf("unshardable profile image should use default avatar, got %q", got)
	}
}

func TestCoverImageURLAbsentWhenMissing(t *testing.T) {
	if got := CoverImageURL(origin, nil); got != "" {
		t.Fatalf("missing cover should stay absent, got %q", got)
	}
	if got := CoverImageURL(origin, &model.ImageRef{Filename: "ab", ImageType: "png"}); got != "" {
		t.Fatalf("unshardable cover should stay absent, got %q", got)
	}
	if got := CoverImageURL(origin, &model.ImageRef{Filename: "abcd", ImageType: "jpg"}); got != origin+"/uploads/ab/cd/abcd.jpg" {
		t.Fatalf("unexpected cover url: %q", got)
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "already absolute https", path: "https://cdn.example.test/a.png", want: "https://cdn.example.test/a.png"},
		{name: "already absolute http", path: "http://cdn.example.test/a.png", want: "http://cdn.example.test/a.png"},
		{name: "rooted path", path: "/uploads/thumb/a.png", want: origin + "/uploads/thumb/a.png"},
		{name: "bare path", path: "uploads/thumb/a.png", want: origin + "/uploads/thumb/a.png"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteURL(origin, tt.path); got != tt.want {
				t.Fatalf("unexpected url: got %q want %q", got, tt.want)
			}
		})
	}
}
