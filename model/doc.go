// Package model fits parametric connection-probability models to the
// binned tables produced by package connprob.
//
// Models form a closed, tagged set of functional forms with typed
// parameters — there is no dynamic expression evaluation:
//
//   - Exponential          — P(d) = Scale · exp(−Decay · d), the
//     distance-dependent (second-order) form.
//   - BipolarExponential   — two Exponential branches selected by the sign
//     of the depth difference, averaged where the difference is zero
//     (third-order form).
//
// Fitting is nonlinear least squares: the sum of squared residuals is
// minimized with Nelder–Mead over the finite samples, from a caller-supplied
// initial guess. FitSecondOrder and FitThirdOrder adapt connprob results
// directly, evaluating models at bin centers, seeding the optimizer from the
// data, and reporting RMSE and R² fit quality.
package model
