// Package certificate verifies the dual-feasibility certificate produced
// alongside a minimum arborescence: for every tight set X in Sigma
// (y(X) > 0), exactly one edge of the candidate tree enters X, and the
// tree's total cost equals the sum of the dual values.
package certificate
