// Package qr 封装 QR 码识别能力。
// 对外契约：识别失败永远不向调用方抛错，只体现为「未找到」。
package qr

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"qrscan/internal/imaging"
)

// Decoder 是 QR 识别适配器。
// Decode 是纯函数（只依赖输入路径），可以被任意多个 goroutine 并发调用。
type Decoder struct {
	registry *imaging.Registry
	logger   *slog.Logger
}

// NewDecoder 创建 QR 识别适配器。
// logger 用于输出诊断信息（stderr 通道），可以为 nil。
func NewDecoder(registry *imaging.Registry, logger *slog.Logger) *Decoder {
	return &Decoder{
		registry: registry,
		logger:   logger,
	}
}

// Decode 尝试从图片文件中识别 QR 码。
//
// 任何阶段失败（打开文件、像素解码、未检出 QR 图案）都归结为
// found=false，同时向诊断通道输出原因，绝不向上传播错误。
func (d *Decoder) Decode(path string) (string, bool) {
	decoder, ok := d.registry.DecoderForFile(path)
	if !ok {
		d.diagnose(path, "unsupported image format")
		return "", false
	}

	file, err := os.Open(path)
	if err != nil {
		d.diagnose(path, err.Error())
		return "", false
	}
	defer file.Close()

	img, err := decoder.Decode(file)
	if err != nil {
		d.diagnose(path, err.Error())
		return "", false
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		d.diagnose(path, err.Error())
		return "", false
	}

	// gozxing 的 QRCodeReader 内部带解码状态，每次调用新建实例保证并发安全。
	result, err := qrcode.NewQRCodeReader().Decode(bitmap, nil)
	if err != nil {
		d.diagnose(path, err.Error())
		return "", false
	}

	return result.GetText(), true
}

// diagnose 输出单文件识别失败的诊断信息。
func (d *Decoder) diagnose(path string, cause string) {
	if d.logger == nil {
		return
	}
	d.logger.Warn("decode failed", "file", filepath.Base(path), "cause", cause)
}
