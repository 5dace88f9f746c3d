package services

import "errors"

// not found → 404
var (
	ErrMenuNotFound     = errors.New("menu not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrImageNotFound    = errors.New("image not found")
)

// bad input → 400
var (
	ErrNotAnImage       = errors.New("uploaded file is not an image")
	ErrImageTooLarge    = errors.New("uploaded image is too large")
	ErrInvalidImageName = errors.New("invalid image file name")
)
