package security

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MediaValidationResult contains the result of a media file check
type MediaValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Lowercased file extension
	DetectedMIME string // MIME type sniffed from content
	Error        string // Error message if validation failed
}

// signature is a magic byte prefix expected at offset
type signature struct {
	offset int
	prefix []byte
}

// Magic byte signatures for gallery media, by lowercase extension
var magicBytes = map[string][]signature{
	".jpg":  {{0, []byte{0xFF, 0xD8, 0xFF}}},
	".jpeg": {{0, []byte{0xFF, 0xD8, 0xFF}}},
	".png":  {{0, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}}},
	".gif":  {{0, []byte("GIF87a")}, {0, []byte("GIF89a")}},
	".webp": {{0, []byte("RIFF")}},
	".mp4":  {{4, []byte("ftyp")}},
	".mov":  {{4, []byte("ftyp")}, {4, []byte("moov")}},
	".webm": {{0, []byte{0x1A, 0x45, 0xDF, 0xA3}}}, // EBML header
	".ogv":  {{0, []byte("OggS")}},
}

// ErrUnsupportedExtension is returned for extensions outside the media whitelist
var ErrUnsupportedExtension = errors.New("media extension not allowed")

// ValidateMediaFile checks a local gallery asset:
// 1. Extension whitelist
// 2. Magic bytes match the extension
func ValidateMediaFile(filename string, data []byte) MediaValidationResult {
	result := MediaValidationResult{
		DetectedMIME: http.DetectContentType(data),
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if err := ValidateMediaExtension(filename); err != nil {
		result.Error = err.Error() + ": " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	for _, sig := range magicBytes[ext] {
		end := sig.offset + len(sig.prefix)
		if len(data) >= end && bytes.Equal(data[sig.offset:end], sig.prefix) {
			return true
		}
	}
	return false
}

// ValidateMediaExtension checks only the extension
func ValidateMediaExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := magicBytes[ext]; !ok {
		return ErrUnsupportedExtension
	}
	return nil
}

// IsImageExtension checks if the extension is an image type
func IsImageExtension(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}
