// Package artminds implements a text-to-image generation service with
// per-account credit accounting.
//
// The service provides:
//   - Prompt validation against a fixed catalog of 20 visual styles
//   - Prompt composition with style fragments, aspect-ratio dimensions
//     and reproducible seeds
//   - Image generation via a HuggingFace-style inference endpoint
//   - Durable public hosting of generated images via an imgbb-style API
//   - Account registration with starting credits and a per-generation
//     charge applied only after a usable artifact exists
//   - Generation history per account
package artminds
