// Package logging assembles the structured slog loggers used across hywoma.
//
// It owns the console/JSON handler selection and level plumbing, and exposes
// attr helpers plus a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every unit
// emits log lines with the same shape.
package logging
