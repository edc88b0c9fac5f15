package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"Recette/config"
	"Recette/pkg/log"
	"Recette/pkg/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ThumbnailPrefix 缩略图命名约定: thumb_{stored name}
const ThumbnailPrefix = "thumb_"

// ImageUpload 一次图片上传的内容
type ImageUpload struct {
	Filename string
	Content  []byte
}

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	// SaveImage 校验并落盘一张图片，同步生成缩略图。
	// 成功后目录里恰好多出原图和缩略图两个文件；任何失败路径不留文件。
	SaveImage(upload ImageUpload) (string, error)

	// SaveImages 批量保存，整体成功或整体回滚。
	SaveImages(uploads []ImageUpload) ([]string, error)

	// DeleteImage 删除原图及缩略图，文件不存在不算错误。
	DeleteImage(stored string) error
}

// MediaService 本地图片存储。stored name 为 {uuid}{ext}，
// 与缩略图同目录平铺，经 /uploads 静态路由对外可读。
type MediaService struct {
	cfg     *config.Storage
	allowed map[string]bool
}

func NewMediaService(conf *config.Storage) *MediaService {
	cfg := conf.Normalize()
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		log.L.Fatal("create storage root", zap.String("root", cfg.Root), zap.Error(err))
	}
	allowed := make(map[string]bool, len(cfg.AllowedExts))
	for _, ext := range cfg.AllowedExts {
		allowed[strings.ToLower(ext)] = true
	}
	return &MediaService{cfg: cfg, allowed: allowed}
}

func (s *MediaService) SaveImage(upload ImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !s.allowed[ext] {
		return "", response.NewKindError(http.StatusBadRequest, response.KindUnsupportedFormat,
			fmt.Sprintf("unsupported file format, accepted: %s", strings.Join(s.cfg.AllowedExts, ", ")))
	}
	if int64(len(upload.Content)) > s.cfg.MaxUploadSize {
		return "", response.NewKindError(http.StatusRequestEntityTooLarge, response.KindPayloadTooLarge,
			fmt.Sprintf("file too large (max %d bytes)", s.cfg.MaxUploadSize))
	}

	stored := uuid.NewString() + ext
	path := filepath.Join(s.cfg.Root, stored)
	if err := os.WriteFile(path, upload.Content, 0o644); err != nil {
		return "", err
	}

	if err := s.createThumbnail(stored, upload.Content); err != nil {
		// 原图回滚，失败不能留下孤儿文件
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.L.Error("rollback original after thumbnail failure",
				zap.String("stored", stored), zap.Error(rmErr))
		}
		return "", response.WrapKindError(http.StatusInternalServerError, response.KindThumbnailFailed,
			"thumbnail generation failed", err)
	}

	return stored, nil
}

func (s *MediaService) SaveImages(uploads []ImageUpload) ([]string, error) {
	if len(uploads) > s.cfg.MaxBatchFiles {
		return nil, response.NewKindError(http.StatusBadRequest, response.KindTooManyFiles,
			fmt.Sprintf("at most %d images per upload", s.cfg.MaxBatchFiles))
	}

	saved := make([]string, 0, len(uploads))
	for _, up := range uploads {
		stored, err := s.SaveImage(up)
		if err != nil {
			for _, name := range saved {
				if derr := s.DeleteImage(name); derr != nil {
					log.L.Error("rollback batch image", zap.String("stored", name), zap.Error(derr))
				}
			}
			return nil, err
		}
		saved = append(saved, stored)
	}
	return saved, nil
}

func (s *MediaService) DeleteImage(stored string) error {
	// stored name 只取 basename，不接受带路径的输入
	base := filepath.Base(stored)
	for _, name := range []string{base, ThumbnailPrefix + base} {
		if err := os.Remove(filepath.Join(s.cfg.Root, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (s *MediaService) createThumbnail(stored string, content []byte) error {
	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return err
	}

	thumb := s.renderThumbnail(src)

	// 缩略图统一编码为 JPEG，天然无 alpha
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.cfg.Root, ThumbnailPrefix+stored), buf.Bytes(), 0o644)
}

// renderThumbnail 等比缩放到最长边不超过 ThumbnailSize，不放大。
// 透明/调色板图先铺不透明白底再绘制。
func (s *MediaService) renderThumbnail(src image.Image) image.Image {
	bound := s.cfg.ThumbnailSize
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > bound || h > bound {
		if w >= h {
			h = h * bound / w
			w = bound
		} else {
			w = w * bound / h
			h = bound
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
