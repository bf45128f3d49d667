// Package dashboard provides the domain records and analytics engine for
// tracking a portfolio of AI initiatives. It is designed to be local-first,
// auditable, and deterministic: every derived metric is a pure function of a
// record snapshot and an explicit configuration value.
//
// The core functionalities include:
//   - Domain Records: immutable-at-rest value types for projects, KPI
//     entries, budget entries, and risk entries, validated on construction.
//   - Storage Port: an interface to retrieve all records of each kind,
//     optionally filtered by project, department, or date range, with a
//     JSONL file-backed implementation and YAML seeding.
//   - Analytics Engine: return on investment, a 0-100 portfolio health
//     score, KPI trend classification, budget variance analysis, and risk
//     matrix scoring.
//   - Reports: structured report types consumed by the renderer package,
//     which produces Markdown and HTML from a single document model.
//
// This package serves as the foundational logic for the `apd` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package dashboard
