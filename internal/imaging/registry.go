// Package imaging 管理图片格式注册与像素解码。
// 该层只负责「文件后缀 → 解码器」的映射，不关心 QR 识别细节。
package imaging

import (
	"image"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Decoder 定义单格式像素解码器接口。
// 每种格式必须有独立实现文件，解码过程必须可并发调用。
type Decoder interface {
	// Name 返回格式名称（例如 JPEG、PNG）。
	Name() string
	// Extensions 返回该格式支持的后缀列表（包含点号，如 .png）。
	Extensions() []string
	// Decode 读取完整图片并返回解码后的像素数据。
	Decode(reader io.Reader) (image.Image, error)
}

// FormatDescriptor 用于对外展示格式及后缀信息。
type FormatDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理格式解码器注册与后缀映射。
type Registry struct {
	decoders     []Decoder
	decoderByExt map[string]Decoder
}

// NewRegistry 创建并注册所有内置格式解码器。
func NewRegistry() *Registry {
	decoders := []Decoder{
		&JPEGDecoder{},
		&PNGDecoder{},
	}

	registry := &Registry{
		decoders:     decoders,
		decoderByExt: make(map[string]Decoder),
	}

	for _, decoder := range decoders {
		for _, ext := range decoder.Extensions() {
			registry.decoderByExt[strings.ToLower(ext)] = decoder
		}
	}

	return registry
}

// DecoderForFile 根据文件后缀查找解码器。
func (r *Registry) DecoderForFile(path string) (Decoder, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	decoder, ok := r.decoderByExt[ext]
	return decoder, ok
}

// Recognized 判断文件后缀是否属于受支持的图片格式。
// 后缀匹配大小写不敏感。
func (r *Registry) Recognized(path string) bool {
	_, ok := r.DecoderForFile(path)
	return ok
}

// Formats 返回已注册格式清单。
func (r *Registry) Formats() []FormatDescriptor {
	result := make([]FormatDescriptor, 0, len(r.decoders))
	for _, decoder := range r.decoders {
		extensions := append([]string(nil), decoder.Extensions()...)
		sort.Strings(extensions)
		result = append(result, FormatDescriptor{
			Name:       decoder.Name(),
			Extensions: extensions,
		})
	}
	return result
}
