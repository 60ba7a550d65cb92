package api

import (
	"net/http"

	"quill/internal/config"
	"quill/pkg/openapi"
)

func buildSpec(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"VerifyRequest": {
			Type:     "object",
			Required: []string{"password"},
			Properties: map[string]*openapi.Schema{
				"password": {Type: "string", Description: "Shared access password"},
			},
		},
		"VerifyResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
				"message": {Type: "string", Description: "Present on failure"},
			},
		},
		"Persona": {
			Type:     "object",
			Required: []string{"id", "name", "prompt"},
			Properties: map[string]*openapi.Schema{
				"id":     {Type: "string"},
				"name":   {Type: "string"},
				"prompt": {Type: "string", Description: "Persona system prompt"},
			},
		},
		"GenerateRequest": {
			Type:     "object",
			Required: []string{"persona", "userTask"},
			Properties: map[string]*openapi.Schema{
				"persona":  openapi.SchemaRef("Persona"),
				"userTask": {Type: "string", Description: "The user's goal in plain language"},
			},
		},
		"GenerateResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"prompt": {Type: "string", Description: "Optimized prompt tailored to the persona"},
			},
		},
		"Record": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"persona_id":   {Type: "string"},
				"persona_name": {Type: "string"},
				"user_task":    {Type: "string"},
				"prompt":       {Type: "string"},
				"model":        {Type: "string"},
				"duration_ms":  {Type: "integer"},
				"created_at":   {Type: "string", Format: "date-time"},
			},
		},
		"RecordPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Record")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"SearchRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page":         {Type: "integer"},
				"page_size":    {Type: "integer"},
				"search":       {Type: "string"},
				"sort":         {Type: "string"},
				"persona_id":   {Type: "string"},
				"persona_name": {Type: "string"},
				"model":        {Type: "string"},
			},
		},
	})

	spec.Paths["/auth"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Verify the shared access password",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("VerifyRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:                  openapi.ResponseJSON("Password accepted", "VerifyResult"),
				http.StatusUnauthorized:        openapi.ResponseJSON("Password rejected", "VerifyResult"),
				http.StatusInternalServerError: openapi.ResponseJSON("No password configured on the server", "VerifyResult"),
			},
		},
	}

	spec.Paths["/generate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Compose an optimized prompt for a persona",
			Tags:        []string{"generation"},
			RequestBody: openapi.RequestBodyJSON("GenerateRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:                  openapi.ResponseJSON("Optimized prompt", "GenerateResult"),
				http.StatusBadRequest:          openapi.ResponseRef("BadRequest"),
				http.StatusInternalServerError: openapi.ResponseRef("ServerError"),
			},
		},
	}

	spec.Paths["/generations"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List generation records",
			Tags:    []string{"history"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Match against persona name and user task", false),
				openapi.QueryParam("persona_id", "string", "Filter by persona id", false),
				openapi.QueryParam("persona_name", "string", "Filter by persona name (contains)", false),
				openapi.QueryParam("model", "string", "Filter by model", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paged generation records", "RecordPage"),
			},
		},
	}

	spec.Paths["/generations/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search generation records",
			Tags:        []string{"history"},
			RequestBody: openapi.RequestBodyJSON("SearchRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:         openapi.ResponseJSON("Paged generation records", "RecordPage"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/generations/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a generation record",
			Tags:       []string{"history"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Generation record id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Generation record", "Record"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a generation record",
			Tags:       []string{"history"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Generation record id")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Record deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	return openapi.MarshalJSON(spec)
}
