package attachment

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TrustDesk/pkg/utils"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxPages = 2
	DefaultMaxChars = 3000

	ImageSentinel         = "[Image fournie: OCR désactivé en démo]"
	UnsupportedSentinel   = "[Pièce jointe non supportée]"
	UnreadablePDFSentinel = "[PDF non lu: erreur extraction]"
	EmptyPDFSentinel      = "[PDF lu mais texte vide]"
)

type Kind string

const (
	KindText        Kind = "text"
	KindPDF         Kind = "pdf"
	KindImage       Kind = "image"
	KindUnsupported Kind = "unsupported"
)

// Extractor turns an uploaded file into bounded plain text. It never fails:
// unreadable or unsupported files yield a fixed sentinel.
type Extractor interface {
	Extract(data []byte, fileName string) string
}

type Config struct {
	MaxPages int
	MaxChars int
}

type extractor struct {
	logger *logrus.Logger
	config Config
}

func NewExtractor(logger *logrus.Logger, config Config) Extractor {
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}
	if config.MaxChars <= 0 {
		config.MaxChars = DefaultMaxChars
	}
	return &extractor{
		logger: logger,
		config: config,
	}
}

// KindOf classifies a file by its lower-cased extension.
func KindOf(fileName string) Kind {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return KindText
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg":
		return KindImage
	default:
		return KindUnsupported
	}
}

func (e *extractor) Extract(data []byte, fileName string) string {
	kind := KindOf(fileName)
	log := e.logger.WithFields(logrus.Fields{
		"kind":  kind,
		"bytes": len(data),
	})

	switch kind {
	case KindText:
		return utils.TruncateRunes(strings.ToValidUTF8(string(data), ""), e.config.MaxChars)
	case KindPDF:
		text, pages, err := readPDF(data, e.config.MaxPages)
		if err != nil {
			log.WithError(err).Warn("pdf extraction failed")
			return UnreadablePDFSentinel
		}
		log.WithFields(logrus.Fields{
			"pages_used": pages,
			"chars":      utf8.RuneCountInString(text),
		}).Debug("pdf extracted")
		if text == "" {
			return EmptyPDFSentinel
		}
		return utils.TruncateRunes(text, e.config.MaxChars)
	case KindImage:
		return ImageSentinel
	default:
		log.Debug("unsupported attachment type")
		return UnsupportedSentinel
	}
}

// readPDF concatenates the non-blank text of the first maxPages pages.
// The parser panics on some malformed inputs; that is reported as an error.
func readPDF(data []byte, maxPages int) (text string, pagesUsed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pagesUsed, err = "", 0, fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open pdf: %w", err)
	}

	pagesUsed = min(reader.NumPage(), maxPages)
	chunks := make([]string, 0, pagesUsed)
	for i := 1; i <= pagesUsed; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		if strings.TrimSpace(pageText) != "" {
			chunks = append(chunks, pageText)
		}
	}

	return strings.TrimSpace(strings.Join(chunks, "\n")), pagesUsed, nil
}
