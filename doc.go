// Package lownerjohn collects small computations in planar convex geometry.
//
// The work is split into one package per computation:
//
//   - polygon: vertex lists, regular polygons, circle and ellipse sampling, convex hull,
//     affine transforms and bounding boxes.
//   - halfplane: the halfplane representation {x : aᵢ·x ≤ bᵢ} of an ordered convex polygon.
//   - ellipsoid: the Löwner–John ellipses of a polygon. Inner is the maximum-area ellipse
//     inside a halfplane system and Outer the minimum-area ellipse around a point set.
//   - john: the affine map taking a convex polygon into John position, where its inner
//     ellipse is the unit disc.
//   - inscribed: regular polygons inscribed in an ellipse and a numerical maximum-area search.
//   - isoperimetric: volume, surface area and isoperimetric ratio of the n-ball and n-cube.
//   - render: figure panels and multi-panel image files built on gonum/plot.
//
// The lownerjohn command in cmd/lownerjohn drives each computation and writes its figure.
package lownerjohn
