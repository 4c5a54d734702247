// Package narrative turns a resolved service profile into plain-language
// prose with an LLM. Generation is strictly additive: the rule-based
// profile is complete and correct without it, and any failure falls back
// to a fixed message rather than blocking or altering the resolution.
package narrative

import (
	"context"
	"log"
	"strings"

	"github.com/wanjiru/huduma-guide/internal/llm"
	"github.com/wanjiru/huduma-guide/internal/prompts"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// FallbackNarrative is returned when generation fails. It is deliberately
// generic: the caller already has the full rule-based profile to show.
const FallbackNarrative = "Detailed guidance is temporarily unavailable. The office, cost, documents and steps shown here come from the official services directory and are complete on their own."

// FallbackReply is the chat fallback when generation fails.
const FallbackReply = "I could not generate a detailed reply right now, but the service details below are accurate. Please review the required documents and visit the listed office."

const promptFile = "guidance.json"

// Generator produces narrative guidance and chat replies for resolved
// profiles. A nil llm.Client is allowed and always yields the fallback.
type Generator struct {
	client  llm.Client
	verbose bool
}

// NewGenerator creates a generator.
func NewGenerator(client llm.Client, verbose bool) *Generator {
	return &Generator{client: client, verbose: verbose}
}

// Narrative generates a plain-language explanation of the profile. When
// the request carries a free-text query the prompt answers it directly;
// otherwise it summarizes what the applicant should know. portalText is
// an optional excerpt from the service's official portal used to ground
// the prose; pass "" when none is available. The boolean reports whether
// the text was AI-generated (false means fallback).
func (g *Generator) Narrative(ctx context.Context, profile *types.ServiceProfile, req *types.ServiceRequest, portalText string) (string, bool) {
	if g.client == nil {
		return FallbackNarrative, false
	}

	key := "narrative"
	if strings.TrimSpace(req.Query) != "" {
		key = "narrative_query"
	}
	template, err := prompts.Get(promptFile, key)
	if err != nil {
		if g.verbose {
			log.Printf("[NARRATIVE] prompt load failed: %v", err)
		}
		return FallbackNarrative, false
	}

	prompt := prompts.Format(template, g.promptData(profile, req, portalText))

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil || strings.TrimSpace(text) == "" {
		if g.verbose {
			log.Printf("[NARRATIVE] generation failed: %v", err)
		}
		return FallbackNarrative, false
	}

	return strings.TrimSpace(text), true
}

// ChatReply generates a short conversational answer to a free-text query
// about the resolved profile. Uses the lite tier: chat replies favor
// latency over depth.
func (g *Generator) ChatReply(ctx context.Context, profile *types.ServiceProfile, query string) (string, bool) {
	if g.client == nil {
		return FallbackReply, false
	}

	template, err := prompts.Get(promptFile, "chat_reply")
	if err != nil {
		if g.verbose {
			log.Printf("[NARRATIVE] prompt load failed: %v", err)
		}
		return FallbackReply, false
	}

	prompt := prompts.Format(template, map[string]string{
		"Query":          query,
		"Service":        profile.ServiceName,
		"Eligibility":    string(profile.Eligibility.Status),
		"Office":         profile.Location.Office,
		"Cost":           profile.Cost.Amount,
		"ProcessingTime": profile.ProcessingTime.Standard,
	})

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil || strings.TrimSpace(text) == "" {
		if g.verbose {
			log.Printf("[NARRATIVE] chat generation failed: %v", err)
		}
		return FallbackReply, false
	}

	return strings.TrimSpace(text), true
}

func (g *Generator) promptData(profile *types.ServiceProfile, req *types.ServiceRequest, portalText string) map[string]string {
	data := map[string]string{
		"Service":         profile.ServiceName,
		"County":          string(profile.County),
		"Office":          profile.Location.Office,
		"Address":         profile.Location.Address,
		"Cost":            profile.Cost.Amount,
		"ProcessingTime":  profile.ProcessingTime.Standard,
		"Eligibility":     string(profile.Eligibility.Status),
		"Conditions":      strings.Join(profile.Eligibility.Conditions, "; "),
		"Age":             string(req.AgeBracket),
		"Residency":       string(req.Residency),
		"ApplicationType": string(req.ApplicationType),
		"Query":           req.Query,
		"PortalContext":   "",
	}

	if portalText != "" {
		contextTemplate, err := prompts.Get(promptFile, "portal_context")
		if err == nil {
			data["PortalContext"] = prompts.Format(contextTemplate, map[string]string{"Text": portalText})
		}
	}

	return data
}
