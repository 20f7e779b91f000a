package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/modelprof/modelprof/core"
	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.ProfileStore
}

// profileResult is the JSON payload returned by render_profile.
type profileResult struct {
	Name    string         `json:"name"`
	Backend string         `json:"backend"`
	Metrics []metricResult `json:"metrics"`
	Report  string         `json:"report"`
}

type metricResult struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Value       *float64 `json:"value"`
	Units       string   `json:"units,omitempty"`
	Description string   `json:"description,omitempty"`
}

// comparisonResult is the JSON payload returned by compare_profiles.
type comparisonResult struct {
	BaseName   string             `json:"base_name"`
	TargetName string             `json:"target_name"`
	Metrics    []comparisonMetric `json:"metrics"`
	Report     string             `json:"report"`
}

type comparisonMetric struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Enhancement string   `json:"enhancement"`
	BaseValue   *float64 `json:"base_value"`
	TargetValue *float64 `json:"target_value"`
	Units       string   `json:"units,omitempty"`
}

func nullableValue(v schema.MetricValue) *float64 {
	raw, ok := v.Float()
	if !ok {
		return nil
	}
	return &raw
}

func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := *h.baseCfg
	cfg.FromStore = request.GetBool("from_store", false)
	cfg.RawOrder = request.GetBool("raw_order", false)
	return &cfg
}

func (h *toolHandler) handleRenderProfile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	cfg.BaseProfile = request.GetString("profile", "")

	status, err := core.ExecuteShow(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile rendering failed: %v", err)), nil
	}

	result := profileResult{
		Name:    status.Name(),
		Backend: status.Backend(),
		Report:  core.RenderProfile(status, core.Options{Notes: true}),
	}
	for _, row := range core.ProfileRows(status) {
		result.Metrics = append(result.Metrics, metricResult{
			Key:         row.Key,
			Label:       row.Label,
			Value:       nullableValue(row.Value),
			Units:       row.Units,
			Description: row.Description,
		})
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareProfiles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	cfg.BaseProfile = request.GetString("base_profile", "")
	cfg.TargetProfile = request.GetString("target_profile", "")

	base, target, err := core.ExecuteCompare(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	result := comparisonResult{
		BaseName:   base.Name(),
		TargetName: target.Name(),
		Report:     core.RenderComparison(base, target, core.Options{Notes: true}),
	}
	for _, row := range core.ComparisonRows(base, target) {
		result.Metrics = append(result.Metrics, comparisonMetric{
			Key:         row.Key,
			Label:       row.Label,
			Enhancement: row.Enhancement,
			BaseValue:   nullableValue(row.BaseValue),
			TargetValue: nullableValue(row.TargetValue),
			Units:       row.Units,
		})
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListDisplayOrder(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload := map[string]any{
		"canonical_order": schema.CanonicalOrder,
		"dropped_keys":    []string{schema.InferenceTimeKey},
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
