// Package scaffold renders Azkaban project trees from embedded templates.
//
// A collection is a project directory holding a global properties file, a
// controller job that publishes date-derived parameters, and a terminal
// final job that every flow's validation job must feed into. A flow is a
// directory of three chained jobs (hive extract, sqoop transfer, qa
// validation) plus a local properties file.
//
// Templates live as .tmpl assets under templates/ and are embedded into the
// binary, so they can be swapped without touching any rendering logic.
//
// Creation is all-or-nothing: trees are rendered into a hidden staging
// directory next to the target and renamed into place, so a failed render
// leaves no partial tree behind.
package scaffold
