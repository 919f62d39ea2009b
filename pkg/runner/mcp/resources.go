package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mood/pkg/mood"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCatalogResource(srv)
	registerMonthsResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

// CatalogEntry is a mood with its weight.
type CatalogEntry struct {
	mood.Mood
	Score int `json:"score"`
}

func catalogPayload() map[string]any {
	entries := make([]CatalogEntry, 0, len(mood.Catalog()))
	for _, m := range mood.Catalog() {
		entries = append(entries, CatalogEntry{Mood: m, Score: mood.ScoreOf(m.Name)})
	}
	return map[string]any{
		"moods": entries,
		"count": len(entries),
		"help":  mood.ScoreHelp(),
	}
}

func registerCatalogResource(srv *server.MCPServer) {
	resource := mcp.NewResource(
		"mood://catalog",
		"Mood Catalog",
		mcp.WithResourceDescription("Every mood a day can be tagged with, and its score."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, catalogPayload())
	})
}

func registerMonthsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"mood://months",
		"Recorded Months",
		mcp.WithResourceDescription("Months that hold moods or notes."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		months, err := svc.Months()
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"months": months,
			"count":  len(months),
		})
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"mood://months/{month}",
		"Month Journal",
		mcp.WithTemplateDescription("Recorded days of a month given as YYYY-MM."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month := templateArgument(request.Params.Arguments["month"])
		if month == "" {
			return nil, fmt.Errorf("month is required")
		}

		dto, err := svc.GetMonth(month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

// templateArgument reads a URI template variable, which the server may
// hand over as a string or a one element list.
func templateArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
