package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// headerSize is amount of data read to detect file type.
const headerSize = 512

const scriptInfoSection = "[script info]"

var scriptType = filetype.NewType("ass", "text/x-ssa")

func init() {
	filetype.AddMatcher(scriptType, scriptMatcher)
}

// scriptMatcher recognizes script text by its first non empty line, which
// must open [Script Info] section. BOM is honored.
func scriptMatcher(buf []byte) bool {
	enc := detectUTF(buf)
	var text string
	switch enc {
	case encUnknown:
		text = string(buf)
	case encUTF8:
		text = string(buf[3:])
	default:
		// decoding a truncated header may fail on the last character
		out, _, _ := transform.Bytes(decoderFor(enc).NewDecoder(), buf)
		text = string(out)
	}
	text = strings.TrimLeft(text, " \t\r\n\ufeff")
	return len(text) >= len(scriptInfoSection) && strings.EqualFold(text[:len(scriptInfoSection)], scriptInfoSection)
}

func isScriptExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ass", ".ssa":
		return true
	}
	return false
}

func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	buf, err := readHeader(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(buf, "zip"), nil
}

// isScriptFile checks extension and content of the file and reports BOM
// encoding if there is one.
func isScriptFile(path string) (bool, srcEncoding, error) {
	if !isScriptExt(path) {
		return false, encUnknown, nil
	}
	buf, err := readHeader(path)
	if err != nil {
		return false, encUnknown, err
	}
	return isScript(buf)
}

func isScriptInArchive(f *zip.File) (bool, srcEncoding, error) {
	if f.FileInfo().IsDir() || !isScriptExt(f.Name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, encUnknown, err
	}
	return isScript(buf[:n])
}

func isScript(buf []byte) (bool, srcEncoding, error) {
	if !filetype.Is(buf, scriptType.Extension) {
		return false, encUnknown, nil
	}
	return true, detectUTF(buf), nil
}

func readHeader(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

func detectUTF(buf []byte) srcEncoding {
	// UTF-32 LE BOM starts with UTF-16 LE BOM, check longer ones first
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

func decoderFor(enc srcEncoding) encoding.Encoding {
	switch enc {
	case encUTF8:
		return unicode.UTF8BOM
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	}
	return nil
}

// selectReader wraps r so it produces UTF-8 without BOM. Data without BOM
// is returned as is and handled by decodeText.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	if enc == encUnknown {
		return r
	}
	dec := decoderFor(enc)
	if dec == nil {
		panic("unknown source encoding")
	}
	return transform.NewReader(r, dec.NewDecoder())
}

// decodeText converts script text without BOM to UTF-8. Valid UTF-8 is kept,
// otherwise forced code page is used or encoding is guessed.
func decodeText(data []byte, cp encoding.Encoding) ([]byte, string, error) {
	if utf8.Valid(data) {
		return data, "utf-8", nil
	}
	name := "forced"
	if cp == nil {
		cp, name, _ = charset.DetermineEncoding(data, "text/plain")
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), cp.NewDecoder()))
	if err != nil {
		return nil, name, err
	}
	return out, name, nil
}
