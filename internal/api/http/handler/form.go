package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/model"
)

const defaultMaxMemory = 8 << 20

var errMalformedBody = model.NewValidationError("body", "is malformed")

// input is a request body reduced to form values plus an optional file.
// JSON bodies are flattened into the same shape so every handler reads
// fields one way.
type input struct {
	values url.Values
	file   *model.File
	closer io.Closer
}

// readInput decodes a JSON, urlencoded or multipart body. fileField names
// the multipart part holding the upload; the empty string ignores files.
func readInput(r *http.Request, fileField string, maxMemory int64) (*input, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/json":
		values, err := decodeJSONValues(r.Body)
		if err != nil {
			return nil, err
		}
		return &input{values: values}, nil

	case "multipart/form-data":
		if maxMemory <= 0 {
			maxMemory = defaultMaxMemory
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, bodyError(err)
		}
		in := &input{values: r.PostForm}
		if fileField == "" {
			return in, nil
		}
		f, header, err := r.FormFile(fileField)
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}
		in.file = fileFromHeader(f, header)
		in.closer = f
		return in, nil

	default:
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
		return &input{values: r.PostForm}, nil
	}
}

func fileFromHeader(f multipart.File, header *multipart.FileHeader) *model.File {
	return &model.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return model.NewValidationError("body", "is too large")
	}
	return errMalformedBody
}

// decodeJSONValues flattens a JSON object into form values. Arrays become
// repeated values; null fields are present with no values.
func decodeJSONValues(body io.Reader) (url.Values, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, bodyError(err)
	}

	values := make(url.Values, len(raw))
	for key, v := range raw {
		switch v := v.(type) {
		case nil:
			values[key] = []string{}
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				list = append(list, scalarString(item))
			}
			values[key] = list
		default:
			values[key] = []string{scalarString(v)}
		}
	}
	return values, nil
}

func scalarString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

func (in *input) Close() {
	if in.closer != nil {
		_ = in.closer.Close()
	}
}

// get returns the first value of the first key present.
func (in *input) get(keys ...string) string {
	for _, key := range keys {
		if vs, ok := in.values[key]; ok && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

func (in *input) has(key string) bool {
	_, ok := in.values[key]
	return ok
}

// list returns key as an ordered list, splitting single values with split.
func (in *input) list(key string, split func(string) []string) []string {
	return content.ParseList(in.values[key], split)
}

// date parses key as an optional date. An empty value is absent.
func (in *input) date(key string) (*model.Date, error) {
	raw := strings.TrimSpace(in.get(key))
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, model.NewValidationError(key, fmt.Sprintf("must be YYYY-MM-DD or YYYY-MM, got %q", raw))
	}
	return &d, nil
}
