package config

// Storage 本地图片存储配置
type Storage struct {
	Root          string   `json:"root" yaml:"root"`
	MaxUploadSize int64    `json:"max_upload_size" yaml:"max_upload_size"`
	MaxBatchFiles int      `json:"max_batch_files" yaml:"max_batch_files"`
	AllowedExts   []string `json:"allowed_exts" yaml:"allowed_exts"`
	ThumbnailSize int      `json:"thumbnail_size" yaml:"thumbnail_size"`
}

// ProvideStorageConfig 供 wire 注入
func ProvideStorageConfig(c *Config) *Storage {
	return c.Storage
}

const (
	DefaultMaxUploadSize = 5 << 20
	DefaultMaxBatchFiles = 5
	DefaultThumbnailSize = 400
)

// Normalize 填充缺省值
func (s *Storage) Normalize() *Storage {
	if s.MaxUploadSize <= 0 {
		s.MaxUploadSize = DefaultMaxUploadSize
	}
	if s.MaxBatchFiles <= 0 {
		s.MaxBatchFiles = DefaultMaxBatchFiles
	}
	if s.ThumbnailSize <= 0 {
		s.ThumbnailSize = DefaultThumbnailSize
	}
	if len(s.AllowedExts) == 0 {
		s.AllowedExts = []string{".jpg", ".jpeg", ".png", ".webp"}
	}
	return s
}
