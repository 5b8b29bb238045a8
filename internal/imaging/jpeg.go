package imaging

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGDecoder 解码 JPEG 图片。
// .jpg 与 .jpeg 是同一格式的两种常见后缀，统一归属此解码器。
type JPEGDecoder struct{}

// Name 返回格式名称。
func (d *JPEGDecoder) Name() string {
	return "JPEG"
}

// Extensions 返回支持的后缀。
func (d *JPEGDecoder) Extensions() []string {
	return []string{".jpg", ".jpeg"}
}

// Decode 解码完整 JPEG 像素数据。
func (d *JPEGDecoder) Decode(reader io.Reader) (image.Image, error) {
	return jpeg.Decode(reader)
}
