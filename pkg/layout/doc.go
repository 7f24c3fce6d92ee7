// Package layout implements Layout, the per-check item sink the fill
// engine populates and the Patcher later reads from, and Spoiler,
// the {seed, settings, layout} bundle serialized to the spoiler log.
package layout
