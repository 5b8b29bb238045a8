package imaging

import (
	"image"
	"image/png"
	"io"
)

// PNGDecoder 解码 PNG 图片。
type PNGDecoder struct{}

// Name 返回格式名称。
func (d *PNGDecoder) Name() string {
	return "PNG"
}

// Extensions 返回支持的后缀。
func (d *PNGDecoder) Extensions() []string {
	return []string{".png"}
}

// Decode 解码完整 PNG 像素数据。
func (d *PNGDecoder) Decode(reader io.Reader) (image.Image, error) {
	return png.Decode(reader)
}
