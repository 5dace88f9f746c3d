package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFileName  = errors.New("file name cannot be empty")
	ErrUnsafeFileName = errors.New("unsafe file name detected")
)

var dangerousChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)

// SanitizeFileName ตัด path ออกและแทนตัวอักษรอันตรายด้วย _
func SanitizeFileName(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = dangerousChars.ReplaceAllString(filename, "_")
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." || filename == ".." || filename == "/" {
		filename = "file"
	}
	return filename
}

// ResolveImageName ตรวจชื่อไฟล์ที่มาจาก URL ก่อนเปิดจาก upload directory
// รับเฉพาะชื่อไฟล์เดี่ยว ไม่มี directory
func ResolveImageName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyFileName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", ErrUnsafeFileName
	}
	if dangerousChars.MatchString(name) {
		return "", ErrUnsafeFileName
	}
	return name, nil
}

// NewImageKey สร้าง key ของรูปใหม่: uuid + นามสกุลเดิม (ตัวเล็ก)
func NewImageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFileName(originalName)))
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}

// KeyFromRef ดึง key จาก reference ที่เก็บในเมนู (ข้อความหลัง / ตัวสุดท้าย)
// ใช้ได้ทั้งชื่อไฟล์เปล่าและ URL เต็ม
func KeyFromRef(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// ImageContentType content type จากนามสกุลไฟล์ ที่ไม่รู้จักเป็น application/octet-stream
func ImageContentType(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
