// Package capture grabs a single still frame from the default camera.
package capture

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"github.com/abihisan/magicstudio/internal/imaging"
)

// ErrCameraUnavailable replaces every underlying capture failure. Device
// detail never reaches the UI.
var ErrCameraUnavailable = errors.New("camera access denied or not available")

// FrameGrabber produces one still frame as encoded image bytes.
type FrameGrabber interface {
	GrabFrame(ctx context.Context) ([]byte, error)
}

// FFmpegGrabber shells out to ffmpeg for a one-shot capture. The process
// exits after the single frame, so the device is released whether the grab
// worked or not.
type FFmpegGrabber struct {
	Binary string // defaults to "ffmpeg"
	Device string // defaults per platform
}

func (g *FFmpegGrabber) args() []string {
	device := g.Device
	var format string
	switch runtime.GOOS {
	case "darwin":
		format = "avfoundation"
		if device == "" {
			device = "0"
		}
	case "windows":
		format = "dshow"
		if device == "" {
			device = "video=Integrated Camera"
		}
	default:
		format = "v4l2"
		if device == "" {
			device = "/dev/video0"
		}
	}
	return []string{
		"-f", format,
		"-i", device,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
}

// GrabFrame captures one PNG frame on stdout.
func (g *FFmpegGrabber) GrabFrame(ctx context.Context) ([]byte, error) {
	binary := g.Binary
	if binary == "" {
		binary = "ffmpeg"
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, g.args()...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, ErrCameraUnavailable
	}
	if out.Len() == 0 {
		return nil, ErrCameraUnavailable
	}
	return out.Bytes(), nil
}

// Snapshot grabs one frame and returns it as an image data URI. Any
// failure, including a frame that does not decode as an image, collapses
// to ErrCameraUnavailable.
func Snapshot(ctx context.Context, g FrameGrabber) (string, error) {
	raw, err := g.GrabFrame(ctx)
	if err != nil {
		return "", ErrCameraUnavailable
	}
	mimeType := http.DetectContentType(raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrCameraUnavailable
	}
	return imaging.EncodeDataURL(mimeType, raw), nil
}
