// Package splitproto описывает протокол HTTP-взаимодействия с сервисом разбиения файлов.
package splitproto

// Параметры REST-протокола.
const (
	SplitsPath      = "/splits"
	SplitPathFormat = "%s/splits/%s"
	PartPathFormat  = "%s/splits/%s/parts/%d"
	EstimatePath    = "/estimate"
	HeaderFileName  = "X-File-Name"
	HeaderParts     = "X-Parts"
	HeaderUnit      = "X-Unit"
	HeaderPartIndex = "X-Part-Index"
	HeaderPartCount = "X-Part-Count"
	HeaderRequested = "X-Requested-Parts"
	HeaderPartSize  = "X-Size"
	FormFieldFile   = "file"
	FormFieldParts  = "parts"
	QueryFileName   = "filename"
	QueryParts      = "parts"
	QueryUnit       = "unit"
	PartContentType = "text/plain; charset=utf-8"
)

// SplitResponse — тело ответа с описанием разбиения.
type SplitResponse struct {
	SplitID        string         `json:"split_id"`
	FileName       string         `json:"file_name"`
	Unit           string         `json:"unit"`
	Size           int            `json:"size"`
	Bytes          int64          `json:"bytes"`
	SizeHuman      string         `json:"size_human"`
	RequestedParts int            `json:"requested_parts"`
	PartCount      int            `json:"part_count"`
	PartSize       int            `json:"part_size"`
	Parts          []PartResponse `json:"parts"`
}

// PartResponse описывает одну часть и ссылку на её скачивание.
type PartResponse struct {
	Index     int    `json:"index"`
	FileName  string `json:"file_name"`
	Size      int    `json:"size"`
	Bytes     int64  `json:"bytes"`
	SizeHuman string `json:"size_human"`
	URL       string `json:"url"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
