// Package tailship installs Tailwind CSS tooling into a Shopify theme.
//
// tailship is a one-shot setup tool: given a directory containing a Shopify
// theme (identified by layout/theme.liquid), it ensures a package.json with a
// `tailwind` build script, writes the Tailwind config and CSS entry point,
// inserts the compiled stylesheet tag into the theme layout, reconciles the
// ignore files, and installs the npm dependencies.
//
// # Installing
//
//	cfg := tailship.Config{
//		Dir:        ".",
//		CSSVersion: tailship.VersionV4,
//	}
//	result, err := tailship.Install(cfg)
//
// Every write path is idempotent: running Install twice against the same
// theme leaves the manifest, templates and generated files unchanged, so the
// tool is always safe to re-run after a failed npm install.
//
// # CLI Tool
//
// tailship also provides a CLI. Install with:
//
//	go install github.com/yacobolo/tailship/cmd/tailship@latest
//
// The `tailship doctor` subcommand performs the read-only counterpart of
// Install: it reports missing or duplicated pieces without touching the
// theme.
package tailship
