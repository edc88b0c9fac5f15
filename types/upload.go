package types

// UploadImagesResponse 上传后菜谱完整图片列表
type UploadImagesResponse struct {
	Images []string `json:"images"`
}
