package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mood/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerToggleMoodTool(srv, svc)
	registerRemoveMoodTool(srv, svc)
	registerSetNoteTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerGetMonthTool(srv, svc)
	registerMonthScoresTool(srv, svc)
	registerRenderGraphTool(srv, svc)
}

func dateArgument() mcp.ToolOption {
	return mcp.WithString("date",
		mcp.Description("Day to change: YYYY-MM-DD, today, yesterday, a day number of this month or an offset like 2d. Defaults to today."),
	)
}

func monthArgument() mcp.ToolOption {
	return mcp.WithString("month",
		mcp.Description("Month as YYYY-MM, or this, last, next. Defaults to the current month."),
	)
}

func registerToggleMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_mood",
		mcp.WithDescription("Add a mood to a day, or remove it when the day already has it."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood name from the catalog."),
			mcp.Enum(mood.Names()...),
		),
		dateArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood string `json:"mood"`
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.ToggleMood(ctx, args.Date, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_mood",
		mcp.WithDescription("Remove a mood from a day. Removing an absent mood is not an error."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood name from the catalog."),
			mcp.Enum(mood.Names()...),
		),
		dateArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("mood")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveMood(ctx, request.GetString("date", ""), name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_note",
		mcp.WithDescription("Replace the note of a day. An empty note deletes it."),
		mcp.WithString("note",
			mcp.Required(),
			mcp.Description("Note text."),
		),
		dateArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		note, err := request.RequireString("note")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetNote(ctx, request.GetString("date", ""), note)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch the moods, note and score of a single day."),
		dateArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetDay(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_month",
		mcp.WithDescription("List every recorded day of a month."),
		monthArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetMonth(request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthScoresTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_scores",
		mcp.WithDescription("Daily mood scores of the elapsed days of a month, with the chart's axis bounds."),
		monthArgument(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.MonthScores(request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRenderGraphTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"render_graph",
		mcp.WithDescription("Render the month's mood chart."),
		monthArgument(),
		mcp.WithString("format",
			mcp.Description("Output format."),
			mcp.Enum(GraphSVG, GraphPNG, GraphText),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := svc.RenderGraph(request.GetString("month", ""), request.GetString("format", GraphSVG))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if g.Format == GraphPNG {
			return mcp.NewToolResultImage("mood chart", g.Data, g.MIMEType), nil
		}
		return mcp.NewToolResultText(g.Data), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
