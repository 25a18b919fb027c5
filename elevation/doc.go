// Package elevation rescales raw field values into a nonnegative
// "height above sea level" representation consumed by the isolation and
// prominence engines.
//
// What:
//
//   - Rescale shifts a 1-D field so its minimum sits at zero: the lowest
//     observation becomes "sea level".
//   - FromPoints treats a multi-dimensional field as positions on a
//     (hyper)sphere: elevation is each point's euclidean distance from a
//     central point, computed per dimension by a center statistic.
//   - ResolveCenter maps a statistic name ("mean", "median") to the
//     Center callable FromPoints consumes; callers may also pass their
//     own Center directly.
//
// Why:
//
//   - Prominence and isolation are defined over heights, not raw values;
//     anchoring the baseline makes an isolated peak's prominence equal to
//     its full height, with no key col to subtract.
//
// Complexity: O(n) for Rescale, O(n·k) for FromPoints.
//
// Errors:
//
//   - ErrUnknownCenter: the center-statistic name does not resolve
//     (configuration error, raised before any computation).
//   - ErrRaggedPoints: rows of differing dimension, or zero dimensions.
package elevation
