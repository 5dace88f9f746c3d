package repositories

import "errors"

// ErrNotFound ไม่พบ record (repository แปลงจาก error ของ ORM ให้)
var ErrNotFound = errors.New("record not found")
