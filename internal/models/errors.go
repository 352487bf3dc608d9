package models

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidPartCount    = errors.New("invalid part count")
	ErrTooManyParts        = errors.New("too many parts")
	ErrReadFailure         = errors.New("read failure")
	ErrContentTooLarge     = errors.New("content too large")
	ErrBinaryContent       = errors.New("binary content")
	ErrNotFound            = errors.New("split not found")
	ErrPartNotFound        = errors.New("part not found")
	ErrInvalidUnit         = errors.New("invalid content unit")
)

// Коды причин, стабильные для клиентов API.
const (
	ReasonUnsupportedFileType = "unsupported_file_type"
	ReasonInvalidPartCount    = "invalid_part_count"
	ReasonTooManyParts        = "too_many_parts"
	ReasonReadFailure         = "read_failure"
	ReasonContentTooLarge     = "content_too_large"
	ReasonBinaryContent       = "binary_content"
	ReasonNotFound            = "not_found"
	ReasonInvalidUnit         = "invalid_unit"
	ReasonInternal            = "internal"
)

// Reason возвращает код причины для ошибки; неизвестные ошибки считаются внутренними.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFileType):
		return ReasonUnsupportedFileType
	case errors.Is(err, ErrInvalidPartCount):
		return ReasonInvalidPartCount
	case errors.Is(err, ErrTooManyParts):
		return ReasonTooManyParts
	case errors.Is(err, ErrContentTooLarge):
		return ReasonContentTooLarge
	case errors.Is(err, ErrReadFailure):
		return ReasonReadFailure
	case errors.Is(err, ErrBinaryContent):
		return ReasonBinaryContent
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPartNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrInvalidUnit):
		return ReasonInvalidUnit
	default:
		return ReasonInternal
	}
}

// Message возвращает сообщение для конечного пользователя.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFileType):
		return "Invalid file type. Please upload a text-based file (e.g., .txt, .csv, .log, .json, .xml, .html, .css, .js)."
	case errors.Is(err, ErrInvalidPartCount):
		return "Please enter a valid number of parts (minimum 2)."
	case errors.Is(err, ErrTooManyParts):
		return "Number of parts cannot exceed the number of bytes in the file."
	case errors.Is(err, ErrContentTooLarge):
		return "The file is too large to be split in memory."
	case errors.Is(err, ErrReadFailure):
		return "Error reading file."
	case errors.Is(err, ErrBinaryContent):
		return "The file does not look like text. Binary files are not supported."
	case errors.Is(err, ErrNotFound):
		return "Split not found or expired."
	case errors.Is(err, ErrPartNotFound):
		return "Part not found."
	case errors.Is(err, ErrInvalidUnit):
		return "Unknown content unit. Use rune, byte or grapheme."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
