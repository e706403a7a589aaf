package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// TestIsArchiveFile tests archive file detection
func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("non-zip extension", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.txt")
		if err := os.WriteFile(filePath, []byte("not a zip"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got {
			t.Errorf("isArchiveFile() = %v, want false", got)
		}
	})

	t.Run("zip extension but invalid content", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.zip")
		if err := os.WriteFile(filePath, []byte("not a real zip file"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got {
			t.Errorf("isArchiveFile() = %v, want false", got)
		}
	})

	t.Run("valid zip file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test2.zip")
		writeZip(t, filePath, map[string][]byte{"a.ass": []byte(sampleScript)})

		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if !got {
			t.Errorf("isArchiveFile() = %v, want true", got)
		}
	})
}

func TestIsArchiveFile_NonExistent(t *testing.T) {
	_, err := isArchiveFile("/nonexistent/file.zip")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte{0x00, 0x01, 0x02, 0x03}, encUnknown},
		{"Short buffer", []byte{0xFF}, encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBOMDetectionFunctions(t *testing.T) {
	if !isUTF8BOM3([]byte{0xEF, 0xBB, 0xBF}) || isUTF8BOM3([]byte{0x00, 0x00, 0x00}) {
		t.Error("isUTF8BOM3 mismatch")
	}
	if !isUTF16BigEndianBOM2([]byte{0xFE, 0xFF}) || isUTF16BigEndianBOM2([]byte{0xFF, 0xFE}) {
		t.Error("isUTF16BigEndianBOM2 mismatch")
	}
	if !isUTF16LittleEndianBOM2([]byte{0xFF, 0xFE}) || isUTF16LittleEndianBOM2([]byte{0xFE, 0xFF}) {
		t.Error("isUTF16LittleEndianBOM2 mismatch")
	}
	if !isUTF32BigEndianBOM4([]byte{0x00, 0x00, 0xFE, 0xFF}) || isUTF32BigEndianBOM4([]byte{0xFF, 0xFE, 0x00, 0x00}) {
		t.Error("isUTF32BigEndianBOM4 mismatch")
	}
	if !isUTF32LittleEndianBOM4([]byte{0xFF, 0xFE, 0x00, 0x00}) || isUTF32LittleEndianBOM4([]byte{0x00, 0x00, 0xFE, 0xFF}) {
		t.Error("isUTF32LittleEndianBOM4 mismatch")
	}
}

func TestIsScriptFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name       string
		filename   string
		content    []byte
		wantScript bool
		wantEnc    srcEncoding
	}{
		{"valid ass file", "test.ass", []byte(sampleScript), true, encUnknown},
		{"ssa extension", "test.ssa", []byte(sampleScript), true, encUnknown},
		{"uppercase extension", "test.ASS", []byte(sampleScript), true, encUnknown},
		{"leading blank lines", "blank.ass", []byte("\r\n\r\n" + sampleScript), true, encUnknown},
		{"lowercase section", "lower.ass", []byte("[script info]\n"), true, encUnknown},
		{"UTF-8 BOM", "bom.ass", append([]byte{0xEF, 0xBB, 0xBF}, sampleScript...), true, encUTF8},
		{"UTF-16 LE", "utf16.ass", encode(t, []byte(sampleScript), encUTF16LittleEndian), true, encUTF16LittleEndian},
		{"UTF-32 BE", "utf32.ass", encode(t, []byte(sampleScript), encUTF32BigEndian), true, encUTF32BigEndian},
		{"wrong extension", "test.txt", []byte(sampleScript), false, encUnknown},
		{"invalid content", "bad.ass", []byte("1\n00:00:01,000 --> 00:00:02,000\nsrt\n"), false, encUnknown},
		{"empty file", "empty.ass", nil, false, encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.filename)
			if err := os.WriteFile(filePath, tt.content, 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, enc, err := isScriptFile(filePath)
			if err != nil {
				t.Fatalf("isScriptFile() error = %v", err)
			}
			if got != tt.wantScript {
				t.Errorf("isScriptFile() script = %v, want %v", got, tt.wantScript)
			}
			if enc != tt.wantEnc {
				t.Errorf("isScriptFile() encoding = %v, want %v", enc, tt.wantEnc)
			}
		})
	}
}

func TestIsScriptFile_NonExistent(t *testing.T) {
	if _, _, err := isScriptFile("/nonexistent/file.ass"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestIsScriptInArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	writeZip(t, zipPath, map[string][]byte{
		"a/test.ass":     []byte(sampleScript),
		"b/test.txt":     []byte("not a script"),
		"c/test-bom.ssa": append([]byte{0xEF, 0xBB, 0xBF}, sampleScript...),
		"d/fake.ass":     []byte("not a script"),
	})

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}
	defer r.Close()

	want := map[string]struct {
		script bool
		enc    srcEncoding
	}{
		"a/test.ass":     {true, encUnknown},
		"b/test.txt":     {false, encUnknown},
		"c/test-bom.ssa": {true, encUTF8},
		"d/fake.ass":     {false, encUnknown},
	}
	for _, f := range r.File {
		got, enc, err := isScriptInArchive(f)
		if err != nil {
			t.Errorf("%s: isScriptInArchive() error = %v", f.Name, err)
			continue
		}
		w := want[f.Name]
		if got != w.script || enc != w.enc {
			t.Errorf("%s: isScriptInArchive() = %v, %v, want %v, %v", f.Name, got, enc, w.script, w.enc)
		}
	}
}

func TestSelectReader(t *testing.T) {
	for _, enc := range []srcEncoding{
		encUnknown,
		encUTF8,
		encUTF16BigEndian,
		encUTF16LittleEndian,
		encUTF32BigEndian,
		encUTF32LittleEndian,
	} {
		data := encode(t, []byte(sampleScript), enc)
		got, err := io.ReadAll(selectReader(bytes.NewReader(data), enc))
		if err != nil {
			t.Fatalf("encoding %d: read error = %v", enc, err)
		}
		if string(got) != sampleScript {
			t.Errorf("encoding %d: decoded text differs", enc)
		}
	}
}

func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding, but didn't panic")
		}
	}()
	selectReader(bytes.NewReader([]byte("test")), srcEncoding(999))
}

func TestDecodeText(t *testing.T) {
	utf := []byte("Dialogue: Привет")

	got, name, err := decodeText(utf, nil)
	if err != nil || name != "utf-8" || !bytes.Equal(got, utf) {
		t.Errorf("decodeText(utf-8) = %q, %q, %v", got, name, err)
	}

	cp1251, err := charmap.Windows1251.NewEncoder().Bytes(utf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, name, err = decodeText(cp1251, charmap.Windows1251)
	if err != nil {
		t.Fatalf("decodeText(forced) error = %v", err)
	}
	if name != "forced" || !bytes.Equal(got, utf) {
		t.Errorf("decodeText(forced) = %q, %q", got, name)
	}

	latin := []byte{'c', 'a', 'f', 0xE9}
	got, _, err = decodeText(latin, nil)
	if err != nil {
		t.Fatalf("decodeText(guess) error = %v", err)
	}
	if string(got) != "café" {
		t.Errorf("decodeText(guess) = %q, want café", got)
	}
}

func encode(t *testing.T, data []byte, enc srcEncoding) []byte {
	t.Helper()
	var (
		out []byte
		err error
	)
	switch enc {
	case encUnknown:
		return data
	case encUTF8:
		return append([]byte{0xEF, 0xBB, 0xBF}, data...)
	case encUTF16BigEndian:
		out, err = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes(data)
	case encUTF16LittleEndian:
		out, err = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(data)
	case encUTF32BigEndian:
		out, err = utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder().Bytes(data)
	case encUTF32LittleEndian:
		out, err = utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder().Bytes(data)
	default:
		t.Fatalf("unsupported encoding: %v", enc)
	}
	if err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	return out
}

func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range files {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}
