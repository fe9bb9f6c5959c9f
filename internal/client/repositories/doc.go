// Package repositories defines the line-oriented key/value store used by the
// SnapHire services.
//
// # Overview
//
// A Store maps a logical key (user ID or profession) to an ordered sequence
// of text lines. Keys are sanitized with keys.Sanitize by the implementation,
// so callers may pass raw identifiers. Two implementations exist:
//
//   - flatfile.Store: one "<key>.txt" file per key under a storage root
//   - memory.Store: an in-process map, used by tests and throwaway sessions
//
// Typical Usage
//
//	st, _ := flatfile.NewStore(dir)
//	if !st.Exists(ctx, "bob123") {
//	    _ = st.WriteCreate(ctx, "bob123", "pass1")
//	}
//	_ = st.AppendBlock(ctx, "chef", []string{"Name: Ana"})
//	lines, _ := st.ReadAllLines(ctx, "chef")
package repositories
