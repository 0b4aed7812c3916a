// Package paw provides web scraping, crawling, and LLM-based structured
// extraction. It fetches pages, converts them to markdown via configurable
// filters, follows same-domain links breadth-first up to a depth bound, and
// maps crawled content onto caller-supplied schemas using a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, htmltomarkdown/, gemini/).
package paw

import "time"

// DefaultUserAgent is sent with every request unless the caller overrides
// the User-Agent header.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultDelay is the pause between consecutive requests to the same domain.
const DefaultDelay = 500 * time.Millisecond
