// Package generator builds rooted digraphs that are guaranteed to contain
// at least one r-arborescence, in four families: Random, Sparse, Dense, and
// Layered. Every family begins with the same backbone step, which attaches
// each non-root vertex to one already-reached vertex so reachability from
// the root can never fail; families then differ only in how they sample
// additional edges on top of that backbone.
package generator
