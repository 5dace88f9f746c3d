package serviceimpl

import (
	"context"
	"os"
	"path/filepath"

	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type ImageServiceImpl struct {
	uploadDir string
}

func NewImageService(uploadDir string) services.ImageService {
	return &ImageServiceImpl{uploadDir: uploadDir}
}

func (s *ImageServiceImpl) Open(ctx context.Context, filename string) (*services.ImageFile, error) {
	name, err := utils.ResolveImageName(filename)
	if err != nil {
		logger.WarnContext(ctx, "Rejected image name", "filename", filename, "error", err)
		return nil, services.ErrInvalidImageName
	}

	fullPath := filepath.Join(s.uploadDir, name)
	file, err := os.Open(fullPath)
	if err != nil {
		logger.WarnContext(ctx, "Image not readable", "filename", name, "error", err)
		return nil, services.ErrImageNotFound
	}

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		file.Close()
		return nil, services.ErrImageNotFound
	}

	return &services.ImageFile{
		Name:        name,
		ContentType: utils.ImageContentType(name),
		Size:        info.Size(),
		Content:     file,
	}, nil
}
