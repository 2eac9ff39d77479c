package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"reflect"
	"regexp"
	"strings"
)

// Params carries the arguments of one call, keyed by declared parameter name.
type Params struct {
	Path   map[string]any
	Query  map[string]any
	Header map[string]any
	Form   map[string]any
	// Body is sent when the operation has no form parameters. []byte and
	// io.Reader values are sent as-is, anything else is JSON encoded.
	Body any
	// ContentType overrides the operation's default request content type.
	ContentType string
}

// File is a form value sent as a multipart file part
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
	// PartName overrides the form field name of the part
	PartName string
}

// BuildRequest turns call arguments into a transport request for op. It
// validates required parameters and performs no I/O.
func BuildRequest(ctx context.Context, cfg *Configuration, op *Operation, params Params) (*http.Request, error) {
	if err := validateRequired(op, params); err != nil {
		return nil, err
	}

	path, err := buildPath(op, params.Path)
	if err != nil {
		return nil, err
	}

	query, err := buildQuery(op, params.Query)
	if err != nil {
		return nil, err
	}

	requested := params.ContentType
	if requested == "" {
		requested = op.defaultContentType()
	}

	isMultipart := len(op.FormParams) > 0 && (hasFiles(params.Form) || requested == ContentTypeMultipart)
	negotiated := SelectHeaders(op.Accept, requested, isMultipart)

	body, contentType, err := buildBody(op, params, negotiated.Get(HeaderContentType), isMultipart)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		negotiated.Set(HeaderContentType, contentType)
	}

	target := cfg.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, target, body)
	if err != nil {
		return nil, &InvalidArgumentError{Operation: op.ID, Param: "url", Reason: err.Error()}
	}

	// default headers < header params < content negotiation < auth
	if cfg.userAgent != "" {
		req.Header.Set(HeaderUserAgent, cfg.userAgent)
	}
	for name, value := range cfg.defaultHeaders {
		req.Header.Set(name, value)
	}

	for _, param := range op.HeaderParams {
		value, ok := params.Header[param.Name]
		if !ok || isEmpty(value) {
			continue
		}
		s, err := toScalarString(value)
		if err != nil {
			return nil, &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
		}
		req.Header.Set(param.Name, s)
	}

	for name, values := range negotiated {
		req.Header[name] = values
	}

	if op.Auth != "" {
		if key, ok := cfg.APIKeyWithPrefix(op.Auth); ok {
			req.Header.Set(op.Auth, key)
		}
	}

	return req, nil
}

func validateRequired(op *Operation, params Params) error {
	groups := []struct {
		declared []Param
		values   map[string]any
	}{
		{op.PathParams, params.Path},
		{op.QueryParams, params.Query},
		{op.HeaderParams, params.Header},
		{op.FormParams, params.Form},
	}

	for _, group := range groups {
		for _, param := range group.declared {
			if param.Required && isEmpty(group.values[param.Name]) {
				return &InvalidArgumentError{Operation: op.ID, Param: param.Name}
			}
		}
	}

	return nil
}

func buildPath(op *Operation, values map[string]any) (string, error) {
	path := op.Path

	for _, param := range op.PathParams {
		value, ok := values[param.Name]
		if !ok {
			continue
		}

		s, err := ToPathValue(value)
		if err != nil {
			return "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
		}

		path = strings.ReplaceAll(path, "{"+param.Name+"}", url.PathEscape(s))
	}

	if loc := placeholderPattern.FindString(path); loc != "" {
		return "", &InvalidArgumentError{Operation: op.ID, Param: strings.Trim(loc, "{}"), Reason: "unresolved path placeholder"}
	}

	return path, nil
}

func buildQuery(op *Operation, values map[string]any) (url.Values, error) {
	query := url.Values{}

	for _, param := range op.QueryParams {
		value, ok := values[param.Name]
		if !ok {
			continue
		}

		encoded, err := ToQueryValues(value, param.Explode)
		if err != nil {
			return nil, &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
		}

		for _, v := range encoded {
			query.Add(param.Name, v)
		}
	}

	return query, nil
}

// buildBody returns the request body and, for multipart bodies, the
// Content-Type carrying the boundary.
func buildBody(op *Operation, params Params, contentType string, isMultipart bool) (io.Reader, string, error) {
	if len(op.FormParams) > 0 && len(params.Form) > 0 {
		if !isMultipart {
			for _, param := range op.FormParams {
				if _, ok := params.Form[param.Name].(io.Reader); ok {
					return nil, "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: "stream values need a multipart body"}
				}
			}
		}

		switch {
		case isMultipart:
			return buildMultipart(op, params.Form)
		case strings.Contains(contentType, ContentTypeJSON):
			data, err := Serialize(formValues(op, params.Form))
			if err != nil {
				return nil, "", &InvalidArgumentError{Operation: op.ID, Param: "form", Reason: err.Error()}
			}
			return bytes.NewReader(data), "", nil
		default:
			form := url.Values{}
			for _, param := range op.FormParams {
				value, ok := params.Form[param.Name]
				if !ok {
					continue
				}
				encoded, err := ToQueryValues(value, true)
				if err != nil {
					return nil, "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
				}
				form[param.Name] = append(form[param.Name], encoded...)
			}
			return strings.NewReader(form.Encode()), "", nil
		}
	}

	switch body := params.Body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(body), "", nil
	case io.Reader:
		return body, "", nil
	case string:
		if !strings.Contains(contentType, ContentTypeJSON) {
			return strings.NewReader(body), "", nil
		}
	}

	data, err := Serialize(params.Body)
	if err != nil {
		return nil, "", &InvalidArgumentError{Operation: op.ID, Param: "body", Reason: err.Error()}
	}

	return bytes.NewReader(data), "", nil
}

func buildMultipart(op *Operation, form map[string]any) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, param := range op.FormParams {
		value, ok := form[param.Name]
		if !ok {
			continue
		}

		if files, ok, err := fileValues(value); ok {
			if err != nil {
				return nil, "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
			}
			for _, f := range files {
				if err := writeFilePart(writer, param.Name, f); err != nil {
					return nil, "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
				}
			}
			continue
		}

		if err := writePart(writer, param.Name, value); err != nil {
			return nil, "", &InvalidArgumentError{Operation: op.ID, Param: param.Name, Reason: err.Error()}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func writePart(writer *multipart.Writer, name string, value any) error {
	if _, ok := value.(io.Reader); ok {
		return fmt.Errorf("stream values must be wrapped in a File")
	}

	if s, err := toScalarString(value); err == nil {
		return writer.WriteField(name, s)
	}

	// Structured values travel as a JSON part
	data, err := Serialize(value)
	if err != nil {
		return err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, name))
	header.Set(HeaderContentType, ContentTypeJSON)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}

	_, err = part.Write(data)
	return err
}

func writeFilePart(writer *multipart.Writer, name string, file File) error {
	if file.PartName != "" {
		name = file.PartName
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = ContentTypeOctetStream
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, file.Name))
	header.Set(HeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}

	if file.Content == nil {
		return nil
	}

	_, err = io.Copy(part, file.Content)
	return err
}

// fileValues reports whether value is one of the accepted file forms and
// returns its files. A nil *File is an error.
func fileValues(value any) ([]File, bool, error) {
	switch v := value.(type) {
	case File:
		return []File{v}, true, nil
	case *File:
		if v == nil {
			return nil, true, errNilFile
		}
		return []File{*v}, true, nil
	case []File:
		return v, true, nil
	case []*File:
		files := make([]File, 0, len(v))
		for _, f := range v {
			if f == nil {
				return nil, true, errNilFile
			}
			files = append(files, *f)
		}
		return files, true, nil
	}

	return nil, false, nil
}

var errNilFile = errors.New("nil file")

func hasFiles(form map[string]any) bool {
	for _, value := range form {
		if _, ok, _ := fileValues(value); ok {
			return true
		}
	}

	return false
}

func formValues(op *Operation, form map[string]any) map[string]any {
	out := make(map[string]any, len(form))
	for _, param := range op.FormParams {
		if value, ok := form[param.Name]; ok {
			out[param.Name] = value
		}
	}

	return out
}

var placeholderPattern = regexp.MustCompile(`\{[^{}/]+\}`)

// ParsePath extracts path parameter values from a request path built for op.
// Any prefix before the template (such as a version segment) is ignored.
func ParsePath(op *Operation, path string) (map[string]string, error) {
	var pattern strings.Builder
	pattern.WriteString("^.*?")

	var names []string
	last := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(op.Path, -1) {
		pattern.WriteString(regexp.QuoteMeta(op.Path[last:loc[0]]))
		pattern.WriteString("([^/]+)")
		names = append(names, op.Path[loc[0]+1:loc[1]-1])
		last = loc[1]
	}
	pattern.WriteString(regexp.QuoteMeta(op.Path[last:]))
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("invalid path template %q: %w", op.Path, err)
	}

	match := re.FindStringSubmatch(path)
	if match == nil {
		return nil, fmt.Errorf("path %q does not match %s", path, op.Path)
	}

	values := make(map[string]string, len(names))
	for i, name := range names {
		value, err := url.PathUnescape(match[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		values[name] = value
	}

	return values, nil
}

// ParseQuery reads declared query parameters back from encoded values.
// Array parameters (declared with a slice Schema) come back as []string,
// everything else as string.
func ParseQuery(op *Operation, query url.Values) map[string]any {
	values := make(map[string]any)

	for _, param := range op.QueryParams {
		raw, ok := query[param.Name]
		if !ok || len(raw) == 0 {
			continue
		}

		if !isArraySchema(param.Schema) {
			values[param.Name] = raw[0]
			continue
		}

		if param.Explode {
			values[param.Name] = append([]string(nil), raw...)
		} else {
			values[param.Name] = strings.Split(raw[0], ",")
		}
	}

	return values
}

func isArraySchema(schema any) bool {
	if schema == nil {
		return false
	}

	kind := reflect.TypeOf(schema).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
