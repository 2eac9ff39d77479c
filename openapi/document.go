package openapi

import (
	"fmt"
	"mime/multipart"
	"reflect"
	"slices"

	oapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi31"
)

// DocumentInfo describes the API in an exported document
type DocumentInfo struct {
	Title       string
	Version     string
	Description string
	ServerURL   string
}

// Document renders a table of operations as an OpenAPI 3.1 JSON document.
// Parameter and response schemas are reflected from the Schema, Body and
// Model samples declared on each operation.
func Document(info DocumentInfo, ops []*Operation) ([]byte, error) {
	reflector := openapi31.NewReflector()
	reflector.Spec.Info.WithTitle(info.Title).WithVersion(info.Version)
	if info.Description != "" {
		reflector.Spec.Info.WithDescription(info.Description)
	}
	if info.ServerURL != "" {
		reflector.Spec.Servers = append(reflector.Spec.Servers, openapi31.Server{URL: info.ServerURL})
	}

	for _, op := range ops {
		oc, err := reflector.NewOperationContext(op.Method, op.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to describe %s: %w", op.ID, err)
		}

		oc.SetID(op.ID)
		oc.SetSummary(op.Summary)
		oc.SetTags(op.Tags...)

		if params := paramsStructure(op); params != nil {
			oc.AddReqStructure(params)
		}
		if op.Body != nil {
			oc.AddReqStructure(op.Body, oapi.WithContentType(op.defaultContentType()))
		}

		statuses := make([]int, 0, len(op.Responses))
		for status := range op.Responses {
			statuses = append(statuses, status)
		}
		slices.Sort(statuses)

		for _, status := range statuses {
			spec := op.Responses[status]

			var model any
			if spec.Model != nil {
				model = spec.Model()
			}

			oc.AddRespStructure(model, oapi.WithHTTPStatus(status))
		}

		if err := reflector.AddOperation(oc); err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", op.ID, err)
		}
	}

	return reflector.Spec.MarshalJSON()
}

var (
	fileType      = reflect.TypeOf(File{})
	filesType     = reflect.TypeOf([]File{})
	fileHeaderPtr = reflect.TypeOf((*multipart.FileHeader)(nil))
)

// paramsStructure builds a struct type whose tags describe op's parameters,
// which is the form the reflector understands.
func paramsStructure(op *Operation) any {
	var fields []reflect.StructField

	add := func(location string, params []Param) {
		for _, param := range params {
			typ := reflect.TypeOf("")
			if param.Schema != nil {
				typ = reflect.TypeOf(param.Schema)
			}

			switch typ {
			case fileType:
				typ = fileHeaderPtr
			case filesType:
				typ = reflect.SliceOf(fileHeaderPtr)
			}

			tag := fmt.Sprintf(`%s:%q`, location, param.Name)
			if param.Required || location == "path" {
				tag += ` required:"true"`
			}

			fields = append(fields, reflect.StructField{
				Name: fmt.Sprintf("P%d", len(fields)),
				Type: typ,
				Tag:  reflect.StructTag(tag),
			})
		}
	}

	add("path", op.PathParams)
	add("query", op.QueryParams)
	add("header", op.HeaderParams)
	add("formData", op.FormParams)

	if len(fields) == 0 {
		return nil
	}

	return reflect.New(reflect.StructOf(fields)).Interface()
}
