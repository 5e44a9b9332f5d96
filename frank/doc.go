// Package frank implements Phase I of András Frank's primal-dual method
// for the minimum-cost rooted arborescence problem.
//
// What: Solve repeatedly tightens the zero-reduced-cost arc set D0 by
// raising the dual variable of every "source" strongly connected
// component of D0 that does not yet contain the root's component, until
// D0 spans an arborescence rooted at r. It returns the final zero-cost
// arc family F and the dual certificate Sigma (only terms with y>0).
//
// Why condensation: a component with in-degree zero in the condensation
// of D0 cannot be reached from r through zero-cost arcs alone, so its
// entering arcs are exactly the ones whose cost must be driven down next.
package frank
