// Package siteaudit provides a single-site SEO auditing tool.
// It crawls a website depth-first, builds an internal/external link graph,
// reconciles the crawled URL set against the site's sitemap, enriches page
// metadata with AI-generated suggestions, and assembles a structured report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/, rod/).
package siteaudit
