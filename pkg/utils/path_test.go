package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"latte.png", "latte.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\photos\cake.jpg`, "cake.jpg"},
		{"we?ird*.gif", "we_ird_.gif"},
		{"", "file"},
		{"..", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveImageName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"plain", "0b7c.png", nil},
		{"double dot inside name", "my..photo.png", nil},
		{"empty", "  ", ErrEmptyFileName},
		{"traversal", "../secret.txt", ErrUnsafeFileName},
		{"dotdot", "..", ErrUnsafeFileName},
		{"subdir", "a/b.png", ErrUnsafeFileName},
		{"backslash", `a\b.png`, ErrUnsafeFileName},
		{"control char", "a\x00.png", ErrUnsafeFileName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveImageName(tt.in)
			if err != tt.wantErr {
				t.Errorf("ResolveImageName(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestNewImageKey(t *testing.T) {
	key := NewImageKey("Latte Art.PNG")
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key %q should keep the lowercased extension", key)
	}
	if len(key) != 36+len(".png") {
		t.Errorf("key %q should be uuid + extension", key)
	}
	if NewImageKey("a.png") == NewImageKey("a.png") {
		t.Error("keys should be unique")
	}
	if got := NewImageKey("noext"); len(got) != 36 {
		t.Errorf("key without extension = %q, want bare uuid", got)
	}
}

func TestKeyFromRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc.png", "abc.png"},
		{"https://menus.s3.ap-northeast-2.amazonaws.com/abc.png", "abc.png"},
		{"http://localhost:9000/menu-images/abc.png", "abc.png"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := KeyFromRef(tt.in); got != tt.want {
				t.Errorf("KeyFromRef(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"a.png", "image/png"},
		{"a.gif", "image/gif"},
		{"a.webp", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ImageContentType(tt.in); got != tt.want {
				t.Errorf("ImageContentType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
