// Package prompts holds the fixed prompt templates for each supported
// technique and the builders that render them with request input.
//
// The template text is part of the API contract: technique output quality
// depends on the exact wording, so edits here change observable behavior.
// Every builder also exposes the template name reported in response metadata.
package prompts
